package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mig-catalog/internal/handler/http/auth"
	"mig-catalog/internal/infra/cache"
	authservice "mig-catalog/internal/service/auth"
)

const testSecret = "k9Xw2mQzk9Xw2mQzk9Xw2mQzk9Xw2mQzk9Xw2mQzk9Xw2mQzk9Xw2mQzk9Xw2mQz"

func newTokenService(t *testing.T) *authservice.TokenService {
	t.Helper()
	return authservice.NewTokenService(testSecret, "", 30*time.Minute, cache.NewMemoryStore())
}

func issueToken(t *testing.T, svc *authservice.TokenService, userID string) string {
	t.Helper()
	token, _, err := svc.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthz_MissingTokenOnProtectedEndpoint(t *testing.T) {
	handler := auth.Authz(newTokenService(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthz_MissingTokenOnPublicEndpoint(t *testing.T) {
	called := false
	handler := auth.Authz(newTokenService(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if got := auth.UserID(r.Context()); got != "" {
			t.Errorf("UserID = %q, want empty for anonymous request", got)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !called {
		t.Fatal("public endpoint should pass without a token")
	}
}

func TestAuthz_ValidToken(t *testing.T) {
	tokens := newTokenService(t)
	token := issueToken(t, tokens, "user-123")

	var gotUserID string
	var gotClaims *authservice.Claims
	handler := auth.Authz(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = auth.UserID(r.Context())
		gotClaims = auth.ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if gotUserID != "user-123" {
		t.Errorf("UserID = %q, want %q", gotUserID, "user-123")
	}
	if gotClaims == nil || gotClaims.UserID != "user-123" {
		t.Errorf("claims = %+v, want UserID user-123", gotClaims)
	}
}

func TestAuthz_InvalidTokenRejectedEvenOnPublicEndpoint(t *testing.T) {
	handler := auth.Authz(newTokenService(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthz_RevokedTokenRejected(t *testing.T) {
	tokens := newTokenService(t)
	token := issueToken(t, tokens, "user-123")

	claims, err := tokens.Verify(t.Context(), token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if err := tokens.Revoke(t.Context(), claims); err != nil {
		t.Fatalf("revoke token: %v", err)
	}

	handler := auth.Authz(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with a revoked token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthz_MalformedAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no bearer prefix", header: "token-without-scheme"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
	}

	tokens := newTokenService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := auth.Authz(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not run")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			req.Header.Set("Authorization", tt.header)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestIsPublicEndpoint(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodGet, "/health", true},
		{http.MethodGet, "/metrics", true},
		{http.MethodGet, "/swagger/index.html", true},
		{http.MethodPost, "/api/v1/auth/login", true},
		{http.MethodPost, "/api/v1/auth/register", true},
		{http.MethodGet, "/api/v1/auth/me", false},
		{http.MethodPost, "/api/v1/auth/logout", false},
		{http.MethodGet, "/api/v1/items", true},
		{http.MethodGet, "/api/v1/items/6f1c2f6e-6a1a-4d2a-9a45-0d6a2c4a9b7e", true},
		{http.MethodPost, "/api/v1/items", false},
		{http.MethodGet, "/api/v1/news", true},
		{http.MethodDelete, "/api/v1/news/6f1c2f6e-6a1a-4d2a-9a45-0d6a2c4a9b7e", false},
		{http.MethodGet, "/api/v1/orders", false},
		{http.MethodGet, "/api/v1/users", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if got := auth.IsPublicEndpoint(tt.method, tt.path); got != tt.want {
				t.Errorf("IsPublicEndpoint(%q, %q) = %v, want %v", tt.method, tt.path, got, tt.want)
			}
		})
	}
}

func TestMeAndLogoutThroughAuthz(t *testing.T) {
	tokens := newTokenService(t)
	token := issueToken(t, tokens, "6f1c2f6e-6a1a-4d2a-9a45-0d6a2c4a9b7e")

	svc := &stubAccountService{getUser: testUser()}

	me := auth.Authz(tokens)(auth.MeHandler{Svc: svc})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	me.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("me status code = %d, want %d (body: %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "taro@example.com") {
		t.Errorf("me body = %s, want account email", rr.Body.String())
	}

	logout := auth.Authz(tokens)(auth.LogoutHandler{Tokens: tokens})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	logout.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("logout status code = %d, want %d", rr.Code, http.StatusNoContent)
	}

	// 失効後は同じトークンでの認証は通らない
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	me.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout status code = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
