package http

import (
	"errors"
	"net/http"

	"mig-catalog/internal/handler/http/respond"
)

// Request input limits. Catalog payloads are small JSON documents and
// bearer tokens stay well under a kilobyte, so these are generous.
const (
	maxAuthHeaderBytes = 8 << 10
	maxPathBytes       = 2 << 10
	maxBodyBytes       = 1 << 20
)

// InputValidation returns middleware that rejects oversized request inputs
// before any handler work happens. It caps the Authorization header, the
// URI path, and the request body.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderBytes {
				respond.Error(w, http.StatusBadRequest, errors.New("authorization header too large"))
				return
			}

			if len(r.URL.Path) > maxPathBytes {
				respond.Error(w, http.StatusRequestURITooLong, errors.New("URI too long"))
				return
			}

			// 本文はハンドラ側で読む時点まで判定を遅延させる
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

			next.ServeHTTP(w, r)
		})
	}
}
