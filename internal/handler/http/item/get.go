package item

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	itemUC "mig-catalog/internal/usecase/item"
)

type GetHandler struct{ Svc Service }

// ServeHTTP 商品詳細取得
// @Summary      商品詳細取得
// @Description  指定されたUUIDの商品を取得します
// @Tags         items
// @Produce      json
// @Param        id path string true "商品UUID"
// @Success      200 {object} DTO "商品詳細" headers(X-RateLimit-Limit=integer,X-RateLimit-Remaining=integer,X-RateLimit-Reset=integer)
// @Failure      400 {string} string "Bad request - invalid item UUID"
// @Failure      404 {string} string "Not found - item not found"
// @Failure      429 {string} string "Too many requests - rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "サーバーエラー"
// @Router       /items/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/items/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, itemUC.ErrInvalidItemID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}
