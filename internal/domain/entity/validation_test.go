package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"valid", "user@example.com", nil},
		{"valid with plus", "user+tag@example.com", nil},
		{"missing at", "userexample.com", ErrInvalidEmail},
		{"missing domain dot", "user@localhost", ErrInvalidEmail},
		{"empty", "", ErrInvalidEmail},
		{"too long", strings.Repeat("a", 250) + "@x.com", ErrEmailTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"valid", "alice_42", nil},
		{"min length", "abc", nil},
		{"too short", "ab", ErrInvalidUsername},
		{"too long", strings.Repeat("a", 21), ErrInvalidUsername},
		{"bad characters", "alice!", ErrInvalidUsername},
		{"leading underscore", "_alice", ErrInvalidUsername},
		{"trailing underscore", "alice_", ErrInvalidUsername},
		{"double underscore", "ali__ce", ErrInvalidUsername},
		{"reserved", "admin", ErrReservedUsername},
		{"reserved mixed case", "Admin", ErrReservedUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Str0ng!Pass", nil},
		{"too short", "S1!a", ErrWeakPassword},
		{"too long", strings.Repeat("Aa1!", 40), ErrWeakPassword},
		{"no upper", "weak1pass!", ErrWeakPassword},
		{"no lower", "WEAK1PASS!", ErrWeakPassword},
		{"no digit", "WeakPass!!", ErrWeakPassword},
		{"no special", "WeakPass11", ErrWeakPassword},
		{"common", "password", ErrCommonPassword},
		// 大文字小文字を変えても一般的なパスワードは弾く
		{"common mixed case", "Password123", ErrCommonPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestContainsUnsafeMarkup(t *testing.T) {
	assert.True(t, ContainsUnsafeMarkup("<script>alert(1)</script>"))
	assert.True(t, ContainsUnsafeMarkup("click javascript:void(0)"))
	assert.True(t, ContainsUnsafeMarkup(`<img onerror="x">`))
	assert.True(t, ContainsUnsafeMarkup("<IFRAME src=x>"))
	assert.False(t, ContainsUnsafeMarkup("a perfectly safe description"))
	assert.False(t, ContainsUnsafeMarkup("price < 100 and > 50"))
}

func TestValidatePrice(t *testing.T) {
	assert.NoError(t, ValidatePrice(0))
	assert.NoError(t, ValidatePrice(999.99))
	assert.ErrorIs(t, ValidatePrice(-1), ErrNegativePrice)
	assert.ErrorIs(t, ValidatePrice(1_000_001), ErrPriceTooLarge)
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1))
	assert.NoError(t, ValidateQuantity(1000))
	assert.ErrorIs(t, ValidateQuantity(0), ErrInvalidQuantity)
	assert.ErrorIs(t, ValidateQuantity(1001), ErrInvalidQuantity)
}
