package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mig-catalog/internal/handler/http/middleware"
	"mig-catalog/internal/handler/http/requestid"
	"mig-catalog/internal/handler/http/respond"
	authservice "mig-catalog/internal/service/auth"
	userUC "mig-catalog/internal/usecase/user"
)

type LoginHandler struct {
	Svc      AccountService
	Tokens   TokenIssuer
	Lockouts *authservice.LockoutTracker
	IPs      middleware.IPExtractor
	Logger   *slog.Logger
}

// ServeHTTP ログイン
// @Summary      ログイン
// @Description  メールアドレスとパスワードで認証し、アクセストークンを発行します。
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body object true "認証情報"
// @Success      200 {object} TokenDTO "アクセストークン" headers(X-RateLimit-Limit=integer,X-RateLimit-Remaining=integer,X-RateLimit-Reset=integer)
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Unauthorized - invalid email or password"
// @Failure      429 {string} string "Too many requests - account temporarily locked or rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "サーバーエラー"
// @Router       /auth/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := h.logger()

	ip, err := h.IPs.ExtractIP(r)
	if err != nil {
		// アドレスが解決できなくても認証自体は進める
		logger.Warn("failed to extract client IP", "error", err.Error())
		ip = r.RemoteAddr
	}

	if !h.Lockouts.Allowed(ip) {
		RecordAuthRequest("locked")
		logger.Warn("login attempt while locked out",
			"ip", ip,
			"request_id", requestid.FromContext(ctx))
		w.Header().Set("Retry-After", "300")
		respond.SafeError(w, http.StatusTooManyRequests, authservice.ErrLockedOut)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Authenticate(ctx, req.Email, req.Password)
	RecordAuthDuration(time.Since(start).Seconds())
	if err != nil {
		RecordAuthRequest("failure")
		if errors.Is(err, userUC.ErrInvalidCredentials) || errors.Is(err, userUC.ErrAccountInactive) {
			h.Lockouts.RecordFailure(ip)
			logger.Warn("login failed",
				"ip", ip,
				"request_id", requestid.FromContext(ctx))
			// 非アクティブなアカウントも資格情報エラーとして返す
			respond.SafeError(w, http.StatusUnauthorized, userUC.ErrInvalidCredentials)
			return
		}
		logger.Error("login failed", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	token, ttl, err := h.Tokens.Issue(user.ID)
	if err != nil {
		RecordAuthRequest("failure")
		logger.Error("token issue failed", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	h.Lockouts.RecordSuccess(ip)
	RecordAuthRequest("success")
	logger.Info("login succeeded",
		"user_id", user.ID,
		"request_id", requestid.FromContext(ctx))

	respond.JSON(w, http.StatusOK, TokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	})
}

func (h LoginHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
