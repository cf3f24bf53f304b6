package item

import (
	"log/slog"
	"net/http"

	"mig-catalog/internal/common/pagination"
)

// Register registers the item endpoints on mux. Reads are open to
// anonymous clients; the global Authz middleware guards the writes.
func Register(mux *http.ServeMux, svc Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /api/v1/items", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET    /api/v1/items/categories", CategoriesHandler{Svc: svc})
	mux.Handle("GET    /api/v1/items/{id}", GetHandler{Svc: svc})
	mux.Handle("POST   /api/v1/items", CreateHandler{Svc: svc})
	mux.Handle("PUT    /api/v1/items/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/v1/items/{id}", DeleteHandler{Svc: svc})
}
