// Package news provides the HTTP handlers for the news endpoints.
// Anyone can read published articles; drafts and all writes require
// authentication.
package news

import (
	"context"
	"time"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	newsUC "mig-catalog/internal/usecase/news"
)

// Service is the slice of the news use case the handlers need.
type Service interface {
	Get(ctx context.Context, id string, publishedOnly bool) (*entity.Article, error)
	ListPaginated(ctx context.Context, publishedOnly bool, params pagination.Params) (*newsUC.PaginatedResult, error)
	Create(ctx context.Context, in newsUC.CreateInput) (*entity.Article, error)
	Update(ctx context.Context, in newsUC.UpdateInput) (*entity.Article, error)
	Delete(ctx context.Context, id string) error
}

// DTO はニュース記事のレスポンス
type DTO struct {
	ID          string    `json:"id" example:"f2b9c7d4-3e1a-4b6f-8a2d-9c5e7f0a1b3c"`
	Title       string    `json:"title" example:"Spring sale starts next week"`
	Content     string    `json:"content" example:"All electronics are 20% off from Monday."`
	Author      string    `json:"author" example:"editorial"`
	IsPublished bool      `json:"is_published" example:"true"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-15T09:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-01-15T09:30:00Z"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Author:      a.Author,
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}
