package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/auth"
	"mig-catalog/internal/handler/http/pathutil"
	"mig-catalog/internal/handler/http/respond"
	userUC "mig-catalog/internal/usecase/user"
)

// errNotOwner is returned when a caller targets someone else's account.
var errNotOwner = errors.New("forbidden: accounts can only be modified by their owner")

type UpdateHandler struct{ Svc Service }

// ServeHTTP アカウント更新
// @Summary      アカウント更新
// @Description  自分のアカウントを更新します。指定されたフィールドのみ変更されます。
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path string true "アカウントUUID"
// @Param        account body object true "更新するアカウント情報"
// @Success      200 {object} DTO "更新後のアカウント"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - not the account owner"
// @Failure      404 {string} string "Not found - account not found"
// @Failure      409 {string} string "Conflict - email or username already in use"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/api/v1/users/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if id != auth.UserID(r.Context()) {
		respond.SafeError(w, http.StatusForbidden, errNotOwner)
		return
	}

	var req struct {
		Email    *string `json:"email"`
		Username *string `json:"username"`
		Password *string `json:"password"`
		IsActive *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Update(r.Context(), userUC.UpdateInput{
		ID:       id,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, userUC.ErrEmailTaken) || errors.Is(err, userUC.ErrUsernameTaken) {
			code = http.StatusConflict
		} else if errors.Is(err, userUC.ErrInvalidUserID) || entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(user))
}
