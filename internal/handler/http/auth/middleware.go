package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mig-catalog/internal/handler/http/respond"
	authservice "mig-catalog/internal/service/auth"
)

// Authz is an authorization middleware that requires JWT authentication
// for all HTTP methods on protected endpoints.
//
// Authorization Logic:
//  1. Attempt token verification whenever an Authorization header is
//     present, so public read endpoints still know who is asking
//     (anonymous clients only see published news).
//  2. If the endpoint is public, allow the request either way.
//  3. If protected, require a verified token for ALL methods and put
//     the user ID and claims into the request context.
//
// A present-but-invalid token is rejected even on public endpoints;
// silently downgrading a bad token to anonymous would mask client bugs
// and token theft.
func Authz(tokens *authservice.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			authz := r.Header.Get("Authorization")
			public := IsPublicEndpoint(r.Method, r.URL.Path)

			if authz == "" {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: missing bearer token"))
				return
			}

			claims, err := verifyBearer(r, tokens, authz)
			RecordAuthzCheckDuration(time.Since(start).Seconds())
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}

			ctx := withUserID(r.Context(), claims.UserID)
			ctx = withClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyBearer(r *http.Request, tokens *authservice.TokenService, authz string) (*authservice.Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return nil, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	if tokenString == "" {
		return nil, errors.New("missing bearer token")
	}
	return tokens.Verify(r.Context(), tokenString)
}
