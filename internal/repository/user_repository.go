package repository

import (
	"context"

	"mig-catalog/internal/domain/entity"
)

type UserRepository interface {
	// Get retrieves a user by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) if not found.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByUsername retrieves a user by username. Returns (nil, nil) if not found.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// ListPaginated retrieves users ordered by creation time, newest first.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.User, error)
	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
