package item

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/infra/cache"
	"mig-catalog/internal/repository"
)

// CreateInput represents the input parameters for creating an item.
type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// UpdateInput represents the input parameters for updating an item.
// Fields with nil values are not updated.
type UpdateInput struct {
	ID          string
	Name        *string
	Description *string
	Price       *float64
	Category    *string
}

// Service provides item management use cases. List and Get results are
// cached; every write invalidates the whole item keyspace because filter
// combinations make precise invalidation impractical.
type Service struct {
	Repo  repository.ItemRepository
	Cache cache.Store
}

// PaginatedResult holds one page of items and the total count.
type PaginatedResult struct {
	Data  []*entity.Item `json:"data"`
	Total int64          `json:"total"`
}

// Get retrieves a single item by ID, serving from cache when possible.
func (s *Service) Get(ctx context.Context, id string) (*entity.Item, error) {
	if id == "" {
		return nil, ErrInvalidItemID
	}

	cacheKey := "items:" + id
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		var item entity.Item
		if err := json.Unmarshal(cached, &item); err == nil {
			return &item, nil
		}
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	s.cacheSet(ctx, cacheKey, item)
	return item, nil
}

// ListPaginated retrieves one page of items matching the filters.
func (s *Service) ListPaginated(ctx context.Context, filters repository.ItemFilters, params pagination.Params) (*PaginatedResult, error) {
	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return nil, ErrInvalidPriceRange
	}

	cacheKey := listCacheKey(filters, params)
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		var result PaginatedResult
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	total, err := s.Repo.CountFiltered(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	items, err := s.Repo.ListPaginated(ctx, filters, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	result := &PaginatedResult{Data: items, Total: total}
	s.cacheSet(ctx, cacheKey, result)
	return result, nil
}

// Categories returns the distinct categories currently in use.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	const cacheKey = "items:categories"
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		var categories []string
		if err := json.Unmarshal(cached, &categories); err == nil {
			return categories, nil
		}
	}

	categories, err := s.Repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	s.cacheSet(ctx, cacheKey, categories)
	return categories, nil
}

// Create validates and stores a new item.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Item, error) {
	now := time.Now().UTC()
	item := &entity.Item{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

// Update applies the non-nil fields of in to the stored item.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Item, error) {
	if in.ID == "" {
		return nil, ErrInvalidItemID
	}
	item, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

// Delete removes the item.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidItemID
	}
	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// listCacheKey derives a stable key from the filters and page. The
// filter struct is hashed so arbitrary search strings cannot produce
// unbounded or unsafe key material.
func listCacheKey(filters repository.ItemFilters, params pagination.Params) string {
	payload, _ := json.Marshal(struct {
		F repository.ItemFilters
		P pagination.Params
	}{filters, params})
	sum := sha256.Sum256(payload)
	return "items:list:" + hex.EncodeToString(sum[:16])
}

// cacheGet returns the cached value or nil. Cache failures are logged at
// debug and treated as misses so the database remains the source of truth.
func (s *Service) cacheGet(ctx context.Context, key string) []byte {
	if s.Cache == nil {
		return nil
	}
	val, err := s.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Debug("item cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil
	}
	return val
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, payload, cache.DefaultTTL); err != nil {
		slog.Debug("item cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.DeletePattern(ctx, "items:*"); err != nil {
		slog.Debug("item cache invalidation failed", slog.Any("error", err))
	}
}
