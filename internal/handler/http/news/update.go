package news

import (
	"encoding/json"
	"errors"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	newsUC "mig-catalog/internal/usecase/news"
)

type UpdateHandler struct{ Svc Service }

// ServeHTTP ニュース更新
// @Summary      ニュース更新
// @Description  既存の記事を更新します。指定されたフィールドのみ変更されます。
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string true "記事UUID"
// @Param        article body object true "更新する記事"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Content     *string `json:"content"`
		Author      *string `json:"author"`
		IsPublished *bool   `json:"is_published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Update(r.Context(), newsUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, newsUC.ErrInvalidArticleID) || entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
