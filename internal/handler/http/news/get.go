package news

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/auth"
	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	newsUC "mig-catalog/internal/usecase/news"
)

type GetHandler struct{ Svc Service }

// ServeHTTP ニュース詳細取得
// @Summary      ニュース詳細取得
// @Description  指定されたUUIDの記事を取得します。未公開の記事は認証済みユーザーのみ閲覧できます。
// @Tags         news
// @Produce      json
// @Param        id path string true "記事UUID"
// @Success      200 {object} DTO "記事詳細"
// @Failure      400 {string} string "Bad request - invalid article UUID"
// @Failure      404 {string} string "Not found - article not found or not published"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	publishedOnly := auth.UserID(r.Context()) == ""
	article, err := h.Svc.Get(r.Context(), id, publishedOnly)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, newsUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
