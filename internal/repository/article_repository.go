package repository

import (
	"context"

	"mig-catalog/internal/domain/entity"
)

type ArticleRepository interface {
	// Get retrieves an article by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.Article, error)
	// ListPaginated retrieves articles ordered by creation time, newest
	// first. When publishedOnly is true, drafts are excluded.
	ListPaginated(ctx context.Context, publishedOnly bool, offset, limit int) ([]*entity.Article, error)
	Count(ctx context.Context, publishedOnly bool) (int64, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
}
