package item

import (
	"encoding/json"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/respond"
	itemUC "mig-catalog/internal/usecase/item"
)

type CreateHandler struct{ Svc Service }

// ServeHTTP 商品作成
// @Summary      商品作成
// @Description  カタログに新しい商品を登録します
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        item body object true "登録する商品情報"
// @Success      201 {object} DTO "作成された商品"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /items [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Create(r.Context(), itemUC.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(item))
}
