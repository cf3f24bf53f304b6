package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/handler/http/auth"
	authservice "mig-catalog/internal/service/auth"
	userUC "mig-catalog/internal/usecase/user"
)

type stubAccountService struct {
	registerUser *entity.User
	registerErr  error
	lastRegister userUC.RegisterInput

	authUser *entity.User
	authErr  error

	getUser *entity.User
	getErr  error
}

func (s *stubAccountService) Register(_ context.Context, in userUC.RegisterInput) (*entity.User, error) {
	s.lastRegister = in
	return s.registerUser, s.registerErr
}

func (s *stubAccountService) Authenticate(_ context.Context, _, _ string) (*entity.User, error) {
	return s.authUser, s.authErr
}

func (s *stubAccountService) Get(_ context.Context, _ string) (*entity.User, error) {
	return s.getUser, s.getErr
}

type stubTokens struct {
	token    string
	ttl      time.Duration
	issueErr error

	revoked   *authservice.Claims
	revokeErr error
}

func (s *stubTokens) Issue(string) (string, time.Duration, error) {
	return s.token, s.ttl, s.issueErr
}

func (s *stubTokens) Revoke(_ context.Context, claims *authservice.Claims) error {
	s.revoked = claims
	return s.revokeErr
}

func testUser() *entity.User {
	return &entity.User{
		ID:       "6f1c2f6e-6a1a-4d2a-9a45-0d6a2c4a9b7e",
		Email:    "taro@example.com",
		Username: "taro",
		IsActive: true,
	}
}

func TestRegisterHandler_Success(t *testing.T) {
	stub := &stubAccountService{registerUser: testUser()}
	handler := auth.RegisterHandler{Svc: stub}

	body := `{"email": "taro@example.com", "username": "taro", "password": "S3cure-Passw0rd!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d (body: %s)", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if stub.lastRegister.Email != "taro@example.com" {
		t.Errorf("Email = %q, want %q", stub.lastRegister.Email, "taro@example.com")
	}
	if stub.lastRegister.Username != "taro" {
		t.Errorf("Username = %q, want %q", stub.lastRegister.Username, "taro")
	}
	if strings.Contains(rr.Body.String(), "password") {
		t.Errorf("response must not echo passwords: %s", rr.Body.String())
	}
}

func TestRegisterHandler_Conflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "email taken", err: userUC.ErrEmailTaken},
		{name: "username taken", err: userUC.ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAccountService{registerErr: tt.err}
			handler := auth.RegisterHandler{Svc: stub}

			body := `{"email": "taro@example.com", "username": "taro", "password": "S3cure-Passw0rd!"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusConflict {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusConflict)
			}
		})
	}
}

func TestRegisterHandler_InvalidInput(t *testing.T) {
	stub := &stubAccountService{registerErr: entity.ErrWeakPassword}
	handler := auth.RegisterHandler{Svc: stub}

	body := `{"email": "taro@example.com", "username": "taro"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestRegisterHandler_StorageFailure(t *testing.T) {
	// DB障害は400ではなく500として返す
	stub := &stubAccountService{registerErr: errors.New("connection refused")}
	handler := auth.RegisterHandler{Svc: stub}

	body := `{"email": "taro@example.com", "username": "taro", "password": "S3cure!pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Errorf("body = %s, want masked message", rr.Body.String())
	}
}

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	handler := auth.RegisterHandler{Svc: &stubAccountService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":}`))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
