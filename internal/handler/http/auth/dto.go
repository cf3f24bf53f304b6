package auth

import (
	"context"
	"time"

	"mig-catalog/internal/domain/entity"
	authservice "mig-catalog/internal/service/auth"
	userUC "mig-catalog/internal/usecase/user"
)

// AccountService is the slice of the user use case the auth endpoints need.
type AccountService interface {
	Register(ctx context.Context, in userUC.RegisterInput) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
}

// TokenIssuer issues and revokes access tokens.
type TokenIssuer interface {
	Issue(userID string) (string, time.Duration, error)
	Revoke(ctx context.Context, claims *authservice.Claims) error
}

// TokenDTO はログイン成功時のアクセストークンレスポンス
type TokenDTO struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"1800"`
}

// UserDTO はアカウント情報のレスポンス
type UserDTO struct {
	ID        string    `json:"id" example:"6f1c2f6e-6a1a-4d2a-9a45-0d6a2c4a9b7e"`
	Email     string    `json:"email" example:"taro@example.com"`
	Username  string    `json:"username" example:"taro"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-15T09:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-15T09:30:00Z"`
}

func toUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
