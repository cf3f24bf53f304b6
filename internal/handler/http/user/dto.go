// Package user provides the HTTP handlers for account endpoints. All
// routes require authentication, and accounts can only be modified by
// their owner.
package user

import (
	"context"
	"time"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	userUC "mig-catalog/internal/usecase/user"
)

// Service is the slice of the user use case the handlers need.
type Service interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	ListPaginated(ctx context.Context, params pagination.Params) (*userUC.PaginatedResult, error)
	Update(ctx context.Context, in userUC.UpdateInput) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// DTO はアカウント情報のレスポンス。パスワードハッシュは含めない。
type DTO struct {
	ID        string    `json:"id" example:"6f1c2f6e-6a1a-4d2a-9a45-0d6a2c4a9b7e"`
	Email     string    `json:"email" example:"taro@example.com"`
	Username  string    `json:"username" example:"taro"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-15T09:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-15T09:30:00Z"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toDTOs(users []*entity.User) []DTO {
	dtos := make([]DTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	return dtos
}
