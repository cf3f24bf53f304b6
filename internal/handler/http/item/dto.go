// Package item provides the HTTP handlers for catalog item endpoints.
// Reads are public; writes require authentication.
package item

import (
	"context"
	"time"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/repository"
	itemUC "mig-catalog/internal/usecase/item"
)

// Service is the slice of the item use case the handlers need.
type Service interface {
	Get(ctx context.Context, id string) (*entity.Item, error)
	ListPaginated(ctx context.Context, filters repository.ItemFilters, params pagination.Params) (*itemUC.PaginatedResult, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, in itemUC.CreateInput) (*entity.Item, error)
	Update(ctx context.Context, in itemUC.UpdateInput) (*entity.Item, error)
	Delete(ctx context.Context, id string) error
}

// DTO は商品情報のレスポンス
type DTO struct {
	ID          string    `json:"id" example:"aeb21405-5e9f-4e9f-9c8e-2f7a3b8f1d4c"`
	Name        string    `json:"name" example:"Wireless Mouse"`
	Description string    `json:"description" example:"2.4GHz wireless mouse with USB receiver"`
	Price       float64   `json:"price" example:"29.99"`
	Category    string    `json:"category" example:"electronics"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-15T09:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-01-15T09:30:00Z"`
}

func toDTO(i *entity.Item) DTO {
	return DTO{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Category:    i.Category,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toDTOs(items []*entity.Item) []DTO {
	dtos := make([]DTO, 0, len(items))
	for _, i := range items {
		dtos = append(dtos, toDTO(i))
	}
	return dtos
}
