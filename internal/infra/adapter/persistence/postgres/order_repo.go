package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/repository"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) repository.OrderRepository {
	return &OrderRepo{db: db}
}

const orderColumns = `id, user_id, total_amount, status, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (repo *OrderRepo) Get(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	items, err := repo.linesFor(ctx, []string{order.ID})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	order.Items = items[order.ID]
	return order, nil
}

// linesFor loads order lines for the given order IDs in one query.
func (repo *OrderRepo) linesFor(ctx context.Context, orderIDs []string) (map[string][]entity.OrderItem, error) {
	const query = `
SELECT id, order_id, item_id, quantity, price
FROM order_items
WHERE order_id = ANY($1)
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("linesFor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var oi entity.OrderItem
		if err := rows.Scan(&oi.ID, &oi.OrderID, &oi.ItemID, &oi.Quantity, &oi.Price); err != nil {
			return nil, fmt.Errorf("linesFor: Scan: %w", err)
		}
		result[oi.OrderID] = append(result[oi.OrderID], oi)
	}
	return result, rows.Err()
}

func (repo *OrderRepo) listPage(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var orders []*entity.Order
	var ids []string
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	lines, err := repo.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = lines[o.ID]
	}
	return orders, nil
}

func (repo *OrderRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Order, error) {
	query := `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`
	orders, err := repo.listPage(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	return orders, nil
}

func (repo *OrderRepo) ListByUserPaginated(ctx context.Context, userID string, offset, limit int) ([]*entity.Order, error) {
	query := `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`
	orders, err := repo.listPage(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByUserPaginated: %w", err)
	}
	return orders, nil
}

func (repo *OrderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *OrderRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountByUser: %w", err)
	}
	return count, nil
}

func (repo *OrderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("CountByStatus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("CountByStatus: Scan: %w", err)
		}
		result[status] = count
	}
	return result, rows.Err()
}

func (repo *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const orderQuery = `
INSERT INTO orders (id, user_id, total_amount, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(ctx, orderQuery,
		order.ID, order.UserID, order.TotalAmount, order.Status,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: order: %w", err)
	}

	const lineQuery = `
INSERT INTO order_items (id, order_id, item_id, quantity, price)
VALUES ($1, $2, $3, $4, $5)`
	for i := range order.Items {
		line := &order.Items[i]
		_, err = tx.ExecContext(ctx, lineQuery,
			line.ID, line.OrderID, line.ItemID, line.Quantity, line.Price)
		if err != nil {
			return fmt.Errorf("Create: line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Create: commit: %w", err)
	}
	return nil
}

func (repo *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	const query = `
UPDATE orders
SET total_amount = $2, status = $3, updated_at = $4
WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query,
		order.ID, order.TotalAmount, order.Status, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (repo *OrderRepo) Delete(ctx context.Context, id string) error {
	result, err := repo.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
