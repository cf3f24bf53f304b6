package item

import (
	"encoding/json"
	"errors"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	itemUC "mig-catalog/internal/usecase/item"
)

type UpdateHandler struct{ Svc Service }

// ServeHTTP 商品更新
// @Summary      商品更新
// @Description  既存の商品を更新します。指定されたフィールドのみ変更されます。
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "商品UUID"
// @Param        item body object true "更新する商品情報"
// @Success      200 {object} DTO "更新後の商品"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - item not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /items/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/items/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Update(r.Context(), itemUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, itemUC.ErrInvalidItemID) || entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}
