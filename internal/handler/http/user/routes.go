package user

import (
	"log/slog"
	"net/http"

	"mig-catalog/internal/common/pagination"
)

// Register registers the account endpoints on mux. None of them are
// public; the global Authz middleware rejects anonymous requests before
// the handlers run.
func Register(mux *http.ServeMux, svc Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /api/v1/users", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET    /api/v1/users/{id}", GetHandler{Svc: svc})
	mux.Handle("PUT    /api/v1/users/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/v1/users/{id}", DeleteHandler{Svc: svc})
}
