package news

import (
	"log/slog"
	"net/http"
	"time"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/handler/http/auth"
	"mig-catalog/internal/handler/http/requestid"
	"mig-catalog/internal/handler/http/respond"
)

type ListHandler struct {
	Svc           Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP ニュース一覧取得
// @Summary      ニュース一覧取得（ページネーション対応）
// @Description  ニュース記事を取得します。未認証の場合は公開済みの記事のみ返されます。
// @Tags         news
// @Produce      json
// @Param        page query int false "ページ番号 (1-based)" default(1) minimum(1)
// @Param        size query int false "1ページあたりの件数" default(10) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[DTO] "ページネーション付きニュース一覧" headers(X-RateLimit-Limit=integer,X-RateLimit-Remaining=integer,X-RateLimit-Reset=integer)
// @Failure      429 {string} string "Too many requests - rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := h.logger()

	// 未認証の閲覧者には公開済み記事のみ
	publishedOnly := auth.UserID(ctx) == ""
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	result, err := h.Svc.ListPaginated(ctx, publishedOnly, params)
	if err != nil {
		logger.Error("failed to list news",
			"error", err.Error(),
			"page", params.Page,
			"request_id", requestid.FromContext(ctx))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("news list request",
		"page", params.Page,
		"size", params.Size,
		"published_only", publishedOnly,
		"returned_count", len(result.Data),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestid.FromContext(ctx))

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Data), result.Total, params))
}

func (h ListHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
