package entity

import "time"

// User represents a registered account in the catalog.
// PasswordHash is a bcrypt digest and is never serialized to clients.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the invariants that must hold for a persisted user.
// The password hash is validated for presence only; hashing policy lives
// in the auth service.
func (u *User) Validate() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}
	if u.PasswordHash == "" {
		return ErrMissingPasswordHash
	}
	return nil
}
