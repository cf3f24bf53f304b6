package item

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/handler/http/requestid"
	"mig-catalog/internal/handler/http/respond"
	"mig-catalog/internal/repository"
)

var validSorts = map[string]bool{
	"":           true,
	"price_asc":  true,
	"price_desc": true,
	"name":       true,
	"newest":     true,
}

type ListHandler struct {
	Svc           Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 商品一覧取得
// @Summary      商品一覧取得（フィルタ・ページネーション対応）
// @Description  カタログの商品を取得します。カテゴリ・キーワード・価格帯で絞り込み、並び順を指定できます。
// @Tags         items
// @Produce      json
// @Param        page      query int    false "ページ番号 (1-based)" default(1) minimum(1)
// @Param        size      query int    false "1ページあたりの件数" default(10) minimum(1) maximum(100)
// @Param        category  query string false "カテゴリ（複数指定可）"
// @Param        search    query string false "名前・説明のキーワード検索"
// @Param        min_price query number false "最低価格"
// @Param        max_price query number false "最高価格"
// @Param        sort      query string false "並び順" Enums(price_asc, price_desc, name, newest)
// @Success      200 {object} pagination.Response[DTO] "ページネーション付き商品一覧" headers(X-RateLimit-Limit=integer,X-RateLimit-Remaining=integer,X-RateLimit-Reset=integer)
// @Failure      400 {string} string "Bad request - invalid query parameters"
// @Failure      429 {string} string "Too many requests - rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "サーバーエラー"
// @Router       /items [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := h.logger()

	filters, err := parseFilters(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	result, err := h.Svc.ListPaginated(ctx, filters, params)
	if err != nil {
		logger.Error("failed to list items",
			"error", err.Error(),
			"page", params.Page,
			"request_id", requestid.FromContext(ctx))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("item list request",
		"page", params.Page,
		"size", params.Size,
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

// parseFilters reads the filter query parameters. Price bounds must be
// non-negative numbers; the range check itself lives in the use case.
func parseFilters(r *http.Request) (repository.ItemFilters, error) {
	q := r.URL.Query()
	filters := repository.ItemFilters{
		Categories: q["category"],
		Search:     q.Get("search"),
		Sort:       q.Get("sort"),
	}

	if !validSorts[filters.Sort] {
		return filters, errors.New("sort must be one of: price_asc, price_desc, name, newest")
	}

	var err error
	if filters.MinPrice, err = parsePrice(q.Get("min_price"), "min_price"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = parsePrice(q.Get("max_price"), "max_price"); err != nil {
		return filters, err
	}

	return filters, nil
}

func parsePrice(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, errors.New(name + " must be a non-negative number")
	}
	return &v, nil
}
