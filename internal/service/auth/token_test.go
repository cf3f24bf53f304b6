package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mig-catalog/internal/infra/cache"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestTokenService(blacklist cache.Store) *TokenService {
	return NewTokenService(testSecret, "", 30*time.Minute, blacklist)
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestTokenService(nil)

	token, ttl, err := svc.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(nil)
	other := NewTokenService("another-secret-another-secret-another-secret-another-secret-1234", "", 30*time.Minute, nil)

	token, _, err := other.Issue("user-1")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRotationSecret(t *testing.T) {
	oldSvc := newTestTokenService(nil)
	token, _, err := oldSvc.Issue("user-1")
	require.NoError(t, err)

	// After rotation the old secret moves to the rotation slot.
	newSvc := NewTokenService("new-primary-secret-new-primary-secret-new-primary-secret-123456", testSecret, 30*time.Minute, nil)
	claims, err := newSvc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestVerifyExpired(t *testing.T) {
	svc := newTestTokenService(nil)
	token, _, err := svc.Issue("user-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(45 * time.Minute) }
	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyMaxAge(t *testing.T) {
	svc := newTestTokenService(nil)
	// Hand-craft a token whose exp is far beyond the maximum age.
	now := time.Now().UTC()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"exp":  now.Add(24 * time.Hour).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"iss":  TokenIssuer,
		"aud":  TokenAudience,
		"jti":  "jti-1",
		"type": "access",
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	svc := newTestTokenService(nil)
	now := time.Now().UTC()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing jti", jwt.MapClaims{
			"sub": "u", "exp": now.Add(time.Minute).Unix(), "iat": now.Unix(),
			"iss": TokenIssuer, "aud": TokenAudience, "type": "access",
		}},
		{"wrong type", jwt.MapClaims{
			"sub": "u", "exp": now.Add(time.Minute).Unix(), "iat": now.Unix(),
			"iss": TokenIssuer, "aud": TokenAudience, "jti": "j", "type": "refresh",
		}},
		{"wrong issuer", jwt.MapClaims{
			"sub": "u", "exp": now.Add(time.Minute).Unix(), "iat": now.Unix(),
			"iss": "someone-else", "aud": TokenAudience, "jti": "j", "type": "access",
		}},
		{"wrong audience", jwt.MapClaims{
			"sub": "u", "exp": now.Add(time.Minute).Unix(), "iat": now.Unix(),
			"iss": TokenIssuer, "aud": "other-users", "jti": "j", "type": "access",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims)
			token, err := raw.SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = svc.Verify(context.Background(), token)
			assert.Error(t, err)
		})
	}
}

func TestRevoke(t *testing.T) {
	store := cache.NewMemoryStore()
	defer func() { _ = store.Close() }()
	svc := newTestTokenService(store)
	ctx := context.Background()

	token, _, err := svc.Issue("user-1")
	require.NoError(t, err)

	claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, claims))

	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}
