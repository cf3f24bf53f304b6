package news

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	newsUC "mig-catalog/internal/usecase/news"
)

type DeleteHandler struct{ Svc Service }

// ServeHTTP ニュース削除
// @Summary      ニュース削除
// @Description  記事を削除します
// @Tags         news
// @Security     BearerAuth
// @Param        id path string true "記事UUID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid article UUID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
