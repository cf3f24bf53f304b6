// Package order provides the HTTP handlers for order endpoints. Every
// route requires authentication, and callers only ever see their own
// orders.
package order

import (
	"context"
	"time"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	orderUC "mig-catalog/internal/usecase/order"
)

// Service is the slice of the order use case the handlers need.
type Service interface {
	Create(ctx context.Context, in orderUC.CreateInput) (*entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	ListByUserPaginated(ctx context.Context, userID string, params pagination.Params) (*orderUC.PaginatedResult, error)
	Update(ctx context.Context, in orderUC.UpdateInput) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
}

// DTO は注文のレスポンス
type DTO struct {
	ID          string    `json:"id" example:"0b8f3c2d-7a4e-4c1b-b6d9-5e2f8a0c3d7b"`
	UserID      string    `json:"user_id" example:"6f1c2f6e-6a1a-4d2a-9a45-0d6a2c4a9b7e"`
	TotalAmount float64   `json:"total_amount" example:"59.98"`
	Status      string    `json:"status" example:"pending"`
	Items       []LineDTO `json:"items"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-15T09:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-01-15T09:30:00Z"`
}

// LineDTO は注文明細のレスポンス。価格は注文時点の単価。
type LineDTO struct {
	ID       string  `json:"id" example:"4d2a9b7e-0d6a-4c4a-8b1c-2f6e6a1a6f1c"`
	ItemID   string  `json:"item_id" example:"aeb21405-5e9f-4e9f-9c8e-2f7a3b8f1d4c"`
	Quantity int     `json:"quantity" example:"2"`
	Price    float64 `json:"price" example:"29.99"`
}

func toDTO(o *entity.Order) DTO {
	lines := make([]LineDTO, 0, len(o.Items))
	for _, line := range o.Items {
		lines = append(lines, LineDTO{
			ID:       line.ID,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return DTO{
		ID:          o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		Items:       lines,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toDTOs(orders []*entity.Order) []DTO {
	dtos := make([]DTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toDTO(o))
	}
	return dtos
}
