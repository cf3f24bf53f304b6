package auth

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/respond"
)

type LogoutHandler struct{ Tokens TokenIssuer }

// ServeHTTP ログアウト
// @Summary      ログアウト
// @Description  アクセストークンを失効させます。失効したトークンは有効期限内でも使用できません。
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      204 "No Content"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /auth/logout [post]
func (h LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	if err := h.Tokens.Revoke(r.Context(), claims); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
