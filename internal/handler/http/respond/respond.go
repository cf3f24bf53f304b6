// Package respond writes JSON responses and keeps internal error details
// out of what clients see.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON body with the given status code.
// A nil v produces headers only.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// ヘッダは送信済みなのでログに残すしかない
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes the error message as a JSON error body. Use only for
// messages that are safe to show clients.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Substrings that mark an error message as client-safe. Validation and
// conflict errors phrase themselves with these.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"already taken",
	"already registered",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"too weak",
	"too many",
	"locked",
	"forbidden",
	"unauthorized",
	"expired",
	"revoked",
}

func clientSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, frag := range safeFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// SafeError writes err as a JSON error body if its message is safe to
// expose. Anything else (DB failures, 5xx) is logged with the sanitized
// detail and replaced by a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	// 5xxは内容を問わず内部エラー扱い
	if code < 500 && clientSafe(err.Error()) {
		JSON(w, code, map[string]string{"error": err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
