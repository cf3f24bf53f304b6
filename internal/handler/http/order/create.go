package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/auth"
	"mig-catalog/internal/handler/http/respond"
	orderUC "mig-catalog/internal/usecase/order"
)

type CreateHandler struct{ Svc Service }

// ServeHTTP 注文作成
// @Summary      注文作成
// @Description  認証済みユーザーの注文を作成します。合計金額は現在のカタログ価格から計算されます。
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order body object true "注文内容"
// @Success      201 {object} DTO "作成された注文" headers(X-RateLimit-Limit=integer,X-RateLimit-Remaining=integer,X-RateLimit-Reset=integer)
// @Failure      400 {string} string "Bad request - invalid input or unknown item"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      429 {string} string "Too many requests - rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "サーバーエラー"
// @Router       /orders [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var req struct {
		Items []struct {
			ItemID   string `json:"item_id"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	lines := make([]orderUC.LineInput, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, orderUC.LineInput{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	order, err := h.Svc.Create(r.Context(), orderUC.CreateInput{
		UserID: userID,
		Lines:  lines,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, orderUC.ErrEmptyOrder) ||
			errors.Is(err, orderUC.ErrUnknownItem) ||
			entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(order))
}
