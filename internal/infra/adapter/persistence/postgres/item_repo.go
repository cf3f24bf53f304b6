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

type ItemRepo struct {
	db           *sql.DB
	queryBuilder *ItemQueryBuilder
}

func NewItemRepo(db *sql.DB) repository.ItemRepository {
	return &ItemRepo{
		db:           db,
		queryBuilder: NewItemQueryBuilder(),
	}
}

func scanItem(row interface{ Scan(...any) error }) (*entity.Item, error) {
	var i entity.Item
	var description, category sql.NullString
	err := row.Scan(&i.ID, &i.Name, &description, &i.Price, &category,
		&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	i.Description = description.String
	i.Category = category.String
	return &i, nil
}

func (repo *ItemRepo) Get(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return item, nil
}

func (repo *ItemRepo) ListPaginated(ctx context.Context, filters repository.ItemFilters, offset, limit int) ([]*entity.Item, error) {
	query, args := repo.queryBuilder.BuildList(filters, offset, limit)
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.Item, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (repo *ItemRepo) CountFiltered(ctx context.Context, filters repository.ItemFilters) (int64, error) {
	query, args := repo.queryBuilder.BuildCount(filters)
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountFiltered: %w", err)
	}
	return count, nil
}

func (repo *ItemRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ItemRepo) Categories(ctx context.Context) ([]string, error) {
	const query = `
SELECT DISTINCT category
FROM items
WHERE category IS NOT NULL AND category <> ''
ORDER BY category`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("Categories: Scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (repo *ItemRepo) GetBatch(ctx context.Context, ids []string) (map[string]*entity.Item, error) {
	if len(ids) == 0 {
		return map[string]*entity.Item{}, nil
	}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("GetBatch: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]*entity.Item, len(ids))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("GetBatch: Scan: %w", err)
		}
		result[item.ID] = item
	}
	return result, rows.Err()
}

func (repo *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	const query = `
INSERT INTO items (id, name, description, price, category, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := repo.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Category,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	const query = `
UPDATE items
SET name = $2, description = $3, price = $4, category = $5, updated_at = $6
WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Category,
		item.UpdatedAt)
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

func (repo *ItemRepo) Delete(ctx context.Context, id string) error {
	result, err := repo.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
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
