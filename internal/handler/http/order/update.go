package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/respond"
	orderUC "mig-catalog/internal/usecase/order"
)

type UpdateHandler struct{ Svc Service }

// ServeHTTP 注文ステータス更新
// @Summary      注文ステータス更新
// @Description  注文のステータスを変更します。pending → processing → shipped → delivered の順にのみ進められ、配達前ならいつでもキャンセルできます。
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path string true "注文UUID"
// @Param        order body object true "変更内容"
// @Success      200 {object} DTO "更新後の注文"
// @Failure      400 {string} string "Bad request - invalid input or status transition"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - order belongs to another user"
// @Failure      404 {string} string "Not found - order not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /orders/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	order, ok := ownOrder(w, r, h.Svc)
	if !ok {
		return
	}

	var req struct {
		Status *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), orderUC.UpdateInput{
		ID:     order.ID,
		Status: req.Status,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, orderUC.ErrOrderNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, orderUC.ErrInvalidOrderID) ||
			errors.Is(err, orderUC.ErrInvalidStatusTransition) ||
			entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}
