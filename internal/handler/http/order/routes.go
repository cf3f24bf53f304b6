package order

import (
	"log/slog"
	"net/http"

	"mig-catalog/internal/common/pagination"
)

// Register registers the order endpoints on mux. None of them are
// public; the global Authz middleware rejects anonymous requests before
// the handlers run.
func Register(mux *http.ServeMux, svc Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("POST   /api/v1/orders", CreateHandler{Svc: svc})
	mux.Handle("GET    /api/v1/orders", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET    /api/v1/orders/{id}", GetHandler{Svc: svc})
	mux.Handle("PUT    /api/v1/orders/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/v1/orders/{id}", DeleteHandler{Svc: svc})
}
