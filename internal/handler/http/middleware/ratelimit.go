package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"mig-catalog/pkg/ratelimit"
)

// RateLimit returns middleware that enforces per-endpoint sliding
// window limits keyed by client IP. Denied requests get a 429 with
// Retry-After and the X-RateLimit-* headers; admitted requests carry
// the same headers so clients can pace themselves.
func RateLimit(limiter *ratelimit.Limiter, ipExtractor IPExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, err := ipExtractor.ExtractIP(r)
			if err != nil {
				slog.Warn("rate limiter: IP extraction failed, using RemoteAddr fallback",
					slog.String("error", err.Error()),
					slog.String("remote_addr", r.RemoteAddr),
				)
				ip, err = hostOf(r.RemoteAddr)
				if err != nil {
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
			}

			rule := limiter.RuleFor(r.URL.Path)
			decision := limiter.Allow(r.Context(), rule.Name+":ip:"+ip, rule)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAtUnix(), 10))

			if !decision.Allowed {
				slog.Warn("rate limit exceeded",
					slog.String("ip", ip),
					slog.String("path", r.URL.Path),
					slog.String("rule", decision.Rule),
					slog.Int("limit", decision.Limit),
				)
				w.Header().Set("Retry-After", strconv.Itoa(decision.RetryAfterSeconds()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
