// Package auth provides the authentication building blocks: bcrypt
// password hashing, JWT issuance and verification with key rotation,
// token revocation, and login lockout tracking.
package auth

import "errors"

var (
	// ErrTokenInvalid indicates a token that failed signature or claim checks.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired indicates a token past its expiry or maximum age.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked indicates a token that was logged out.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrLockedOut indicates too many failed login attempts from one address.
	ErrLockedOut = errors.New("too many failed login attempts, try again later")
)
