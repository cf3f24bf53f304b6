package user

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/auth"
	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	userUC "mig-catalog/internal/usecase/user"
)

type DeleteHandler struct{ Svc Service }

// ServeHTTP アカウント削除
// @Summary      アカウント削除
// @Description  自分のアカウントを削除します
// @Tags         users
// @Security     BearerAuth
// @Param        id path string true "アカウントUUID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid account UUID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - not the account owner"
// @Failure      404 {string} string "Not found - account not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/users/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if id != auth.UserID(r.Context()) {
		respond.SafeError(w, http.StatusForbidden, errNotOwner)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
