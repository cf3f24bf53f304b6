package user

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	userUC "mig-catalog/internal/usecase/user"
)

type GetHandler struct{ Svc Service }

// ServeHTTP アカウント詳細取得
// @Summary      アカウント詳細取得
// @Description  指定されたUUIDのアカウントを取得します
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "アカウントUUID"
// @Success      200 {object} DTO "アカウント詳細"
// @Failure      400 {string} string "Bad request - invalid account UUID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - account not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/users/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrInvalidUserID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(user))
}
