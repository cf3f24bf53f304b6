package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/respond"
	userUC "mig-catalog/internal/usecase/user"
)

type RegisterHandler struct{ Svc AccountService }

// ServeHTTP アカウント登録
// @Summary      アカウント登録
// @Description  新しいアカウントを作成します。メールアドレスとユーザー名は一意である必要があります。
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account body object true "登録するアカウント情報"
// @Success      201 {object} UserDTO "作成されたアカウント" headers(X-RateLimit-Limit=integer,X-RateLimit-Remaining=integer,X-RateLimit-Reset=integer)
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      409 {string} string "Conflict - email or username already in use"
// @Failure      429 {string} string "Too many requests - rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "サーバーエラー"
// @Router       /auth/register [post]
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Register(r.Context(), userUC.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		RecordRegistration("failure")
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrEmailTaken) || errors.Is(err, userUC.ErrUsernameTaken) {
			code = http.StatusConflict
		} else if entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	RecordRegistration("success")
	respond.JSON(w, http.StatusCreated, toUserDTO(user))
}
