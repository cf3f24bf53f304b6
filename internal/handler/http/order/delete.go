package order

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/respond"
	orderUC "mig-catalog/internal/usecase/order"
)

type DeleteHandler struct{ Svc Service }

// ServeHTTP 注文削除
// @Summary      注文削除
// @Description  注文とその明細を削除します。自分の注文のみ削除できます。
// @Tags         orders
// @Security     BearerAuth
// @Param        id path string true "注文UUID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid order UUID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - order belongs to another user"
// @Failure      404 {string} string "Not found - order not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /orders/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	order, ok := ownOrder(w, r, h.Svc)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), order.ID); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, orderUC.ErrOrderNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
