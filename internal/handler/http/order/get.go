package order

import (
	"errors"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/auth"
	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	orderUC "mig-catalog/internal/usecase/order"
)

type GetHandler struct{ Svc Service }

// ServeHTTP 注文詳細取得
// @Summary      注文詳細取得
// @Description  指定されたUUIDの注文を明細付きで取得します。自分の注文のみ閲覧できます。
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "注文UUID"
// @Success      200 {object} DTO "注文詳細"
// @Failure      400 {string} string "Bad request - invalid order UUID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - order belongs to another user"
// @Failure      404 {string} string "Not found - order not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /orders/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	order, ok := ownOrder(w, r, h.Svc)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(order))
}

// ownOrder extracts the order ID from the path, loads the order and
// enforces that it belongs to the authenticated user. On failure the
// response has already been written.
func ownOrder(w http.ResponseWriter, r *http.Request, svc Service) (*entity.Order, bool) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/orders/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	order, err := svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, orderUC.ErrInvalidOrderID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, orderUC.ErrOrderNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return nil, false
	}

	if order.UserID != auth.UserID(r.Context()) {
		respond.SafeError(w, http.StatusForbidden, orderUC.ErrForbidden)
		return nil, false
	}
	return order, true
}
