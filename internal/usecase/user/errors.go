// Package user provides use cases for account management. It implements
// registration, authentication, and profile maintenance on top of the
// user repository.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID indicates that the provided user ID is empty or malformed.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrEmailTaken indicates that another account already uses this email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken indicates that another account already uses this username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials indicates a failed login. The message is the
	// same for an unknown email and a wrong password so the endpoint does
	// not leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive indicates a login attempt on a deactivated account.
	ErrAccountInactive = errors.New("account is inactive")
)
