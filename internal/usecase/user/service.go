package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/repository"
)

// PasswordHasher abstracts the password hashing policy so the use case
// does not depend on the auth service directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// RegisterInput represents the input parameters for creating an account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// UpdateInput represents the input parameters for updating an account.
// Fields with nil values are not updated.
type UpdateInput struct {
	ID       string
	Email    *string
	Username *string
	Password *string
	IsActive *bool
}

// Service provides account management use cases.
type Service struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
}

// PaginatedResult holds one page of users and the total count.
type PaginatedResult struct {
	Data  []*entity.User
	Total int64
}

// Register validates the input, enforces email and username uniqueness,
// and stores the account with a hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := entity.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.Repo.GetByUsername(ctx, in.Username); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Authenticate checks the credentials and returns the account on success.
// A bcrypt comparison runs even for unknown emails so response timing
// does not reveal whether an account exists.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if user == nil {
		s.Hasher.Verify(timingDummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if !s.Hasher.Verify(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return user, nil
}

// timingDummyHash is a valid bcrypt digest of a random string, used to
// equalize Authenticate latency for unknown emails.
const timingDummyHash = "$2a$14$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Get retrieves a single user by ID.
func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, ErrInvalidUserID
	}
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListPaginated retrieves one page of users with the total count.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	users, err := s.Repo.ListPaginated(ctx, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &PaginatedResult{Data: users, Total: total}, nil
}

// Update applies the non-nil fields of in to the stored account.
// Changing email or username re-checks uniqueness; changing the password
// re-validates and re-hashes it.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	user, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if err := entity.ValidateEmail(*in.Email); err != nil {
			return nil, err
		}
		if existing, err := s.Repo.GetByEmail(ctx, *in.Email); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		} else if existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = *in.Email
	}

	if in.Username != nil && *in.Username != user.Username {
		if err := entity.ValidateUsername(*in.Username); err != nil {
			return nil, err
		}
		if existing, err := s.Repo.GetByUsername(ctx, *in.Username); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		} else if existing != nil {
			return nil, ErrUsernameTaken
		}
		user.Username = *in.Username
	}

	if in.Password != nil {
		if err := entity.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("update user: hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes the account.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
