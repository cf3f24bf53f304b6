// Package auth provides the authentication endpoints and the JWT
// authorization middleware for the API.
package auth

import (
	"context"

	authservice "mig-catalog/internal/service/auth"
)

type ctxKey string

const (
	ctxUserID ctxKey = "user_id"
	ctxClaims ctxKey = "claims"
)

// UserID returns the authenticated user ID from the context, or an
// empty string for anonymous requests.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxUserID).(string); ok {
		return id
	}
	return ""
}

// withUserID stores the authenticated user ID in the context.
func withUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxUserID, id)
}

// ClaimsFromContext returns the verified token claims, or nil for
// anonymous requests. Logout uses the claims to revoke the token.
func ClaimsFromContext(ctx context.Context) *authservice.Claims {
	if c, ok := ctx.Value(ctxClaims).(*authservice.Claims); ok {
		return c
	}
	return nil
}

func withClaims(ctx context.Context, c *authservice.Claims) context.Context {
	return context.WithValue(ctx, ctxClaims, c)
}
