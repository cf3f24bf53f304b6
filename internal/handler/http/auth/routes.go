package auth

import (
	"log/slog"
	"net/http"

	"mig-catalog/internal/handler/http/middleware"
	authservice "mig-catalog/internal/service/auth"
)

// Register registers the authentication endpoints on mux. The Authz
// middleware runs globally, so /auth/me and /auth/logout see verified
// claims in the request context.
func Register(mux *http.ServeMux, svc AccountService, tokens TokenIssuer, lockouts *authservice.LockoutTracker, ips middleware.IPExtractor, logger *slog.Logger) {
	mux.Handle("POST   /api/v1/auth/register", RegisterHandler{Svc: svc})
	mux.Handle("POST   /api/v1/auth/login", LoginHandler{Svc: svc, Tokens: tokens, Lockouts: lockouts, IPs: ips, Logger: logger})
	mux.Handle("GET    /api/v1/auth/me", MeHandler{Svc: svc})
	mux.Handle("POST   /api/v1/auth/logout", LogoutHandler{Tokens: tokens})
}
