package repository

import (
	"context"

	"mig-catalog/internal/domain/entity"
)

// ItemFilters contains optional filters for item listing.
// Nil fields are ignored when building the query.
type ItemFilters struct {
	Categories []string // Filter by one or more categories
	Search     string   // Case-insensitive match on name and description
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string // One of: price_asc, price_desc, name, newest
}

type ItemRepository interface {
	// Get retrieves an item by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.Item, error)
	// ListPaginated retrieves items matching the filters with LIMIT/OFFSET.
	ListPaginated(ctx context.Context, filters ItemFilters, offset, limit int) ([]*entity.Item, error)
	// CountFiltered returns the number of items matching the filters.
	// Used for pagination metadata alongside ListPaginated.
	CountFiltered(ctx context.Context, filters ItemFilters) (int64, error)
	// Count returns the total number of items.
	Count(ctx context.Context) (int64, error)
	// Categories returns the distinct categories currently in use.
	Categories(ctx context.Context) ([]string, error)
	// GetBatch retrieves items by ID in a single query.
	// Missing IDs are simply absent from the result map.
	GetBatch(ctx context.Context, ids []string) (map[string]*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
}
