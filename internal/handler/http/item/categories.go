package item

import (
	"net/http"

	"mig-catalog/internal/handler/http/respond"
)

type CategoriesHandler struct{ Svc Service }

// ServeHTTP カテゴリ一覧取得
// @Summary      カテゴリ一覧取得
// @Description  カタログに存在する商品カテゴリの一覧を取得します
// @Tags         items
// @Produce      json
// @Success      200 {object} map[string][]string "カテゴリ一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /items/categories [get]
func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.Categories(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	respond.JSON(w, http.StatusOK, map[string][]string{"categories": categories})
}
