package item

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	itemUC "mig-catalog/internal/usecase/item"
)

type DeleteHandler struct{ Svc Service }

// ServeHTTP 商品削除
// @Summary      商品削除
// @Description  商品をカタログから削除します
// @Tags         items
// @Security     BearerAuth
// @Param        id path string true "商品UUID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid item UUID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - item not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /items/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/items/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
