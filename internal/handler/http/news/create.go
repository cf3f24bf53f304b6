package news

import (
	"encoding/json"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/respond"
	newsUC "mig-catalog/internal/usecase/news"
)

type CreateHandler struct{ Svc Service }

// ServeHTTP ニュース作成
// @Summary      ニュース作成
// @Description  新しいニュース記事を作成します
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "作成する記事"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		Author      string `json:"author"`
		IsPublished bool   `json:"is_published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Create(r.Context(), newsUC.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(article))
}
