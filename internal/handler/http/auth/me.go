package auth

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/respond"
	userUC "mig-catalog/internal/usecase/user"
)

type MeHandler struct{ Svc AccountService }

// ServeHTTP 自分のアカウント情報取得
// @Summary      自分のアカウント情報取得
// @Description  アクセストークンに紐づくアカウント情報を取得します。
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} UserDTO "アカウント情報"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - account no longer exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /auth/me [get]
func (h MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := UserID(r.Context())
	if id == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	user, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toUserDTO(user))
}
