package news

import (
	"log/slog"
	"net/http"

	"mig-catalog/internal/common/pagination"
)

// Register registers the news endpoints on mux. Reads are open to
// anonymous clients; the global Authz middleware guards the writes and
// the visibility of drafts.
func Register(mux *http.ServeMux, svc Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /api/v1/news", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET    /api/v1/news/{id}", GetHandler{Svc: svc})
	mux.Handle("POST   /api/v1/news", CreateHandler{Svc: svc})
	mux.Handle("PUT    /api/v1/news/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/v1/news/{id}", DeleteHandler{Svc: svc})
}
