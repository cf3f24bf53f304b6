package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callInputValidation(t *testing.T, req *http.Request, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	InputValidation()(handler).ServeHTTP(rec, req)
	return rec
}

func TestInputValidation_PassesNormalRequest(t *testing.T) {
	called := false
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer token123")

	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInputValidation_AuthorizationHeaderTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer "+strings.Repeat("a", maxAuthHeaderBytes))

	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization header too large")
}

func TestInputValidation_AuthorizationHeaderAtLimit(t *testing.T) {
	// 上限ちょうどは通す
	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", strings.Repeat("a", maxAuthHeaderBytes))

	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInputValidation_PathTooLong(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/"+strings.Repeat("x", maxPathBytes), nil)

	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	assert.Equal(t, http.StatusRequestURITooLong, rec.Code)
	assert.Contains(t, rec.Body.String(), "URI too long")
}

func TestInputValidation_BodyCappedAtLimit(t *testing.T) {
	body := strings.Repeat("b", maxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", strings.NewReader(body))

	var readErr error
	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		if readErr != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	require.Error(t, readErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestInputValidation_SmallBodyReadsFully(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/items", strings.NewReader(`{"name":"mouse"}`))

	var got []byte
	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"name":"mouse"}`, string(got))
}

func TestInputValidation_NoAuthorizationHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)

	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInputValidation_HeaderCheckedBeforePath(t *testing.T) {
	// 複数違反時はヘッダ検査が先に走る
	req := httptest.NewRequest(http.MethodGet, "/"+strings.Repeat("x", maxPathBytes), nil)
	req.Header.Set("Authorization", strings.Repeat("a", maxAuthHeaderBytes+1))

	rec := callInputValidation(t, req, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
