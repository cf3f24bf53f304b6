package repository

import (
	"context"

	"mig-catalog/internal/domain/entity"
)

type OrderRepository interface {
	// Get retrieves an order with its lines. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.Order, error)
	// ListPaginated retrieves orders ordered by creation time, newest first.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Order, error)
	// ListByUserPaginated retrieves one user's orders, newest first.
	ListByUserPaginated(ctx context.Context, userID string, offset, limit int) ([]*entity.Order, error)
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// CountByStatus returns order counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)
	// Create inserts the order and its lines in a single transaction.
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}
