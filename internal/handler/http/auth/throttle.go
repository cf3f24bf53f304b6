package auth

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"mig-catalog/internal/handler/http/middleware"
	"mig-catalog/internal/handler/http/respond"
)

const (
	// DefaultThrottleRate は認証エンドポイントの1秒あたりの許容リクエスト数
	DefaultThrottleRate  = rate.Limit(1)
	DefaultThrottleBurst = 5

	throttleMaxClients = 10000
	throttleIdleExpiry = 10 * time.Minute
)

// throttleState tracks a token bucket per client IP.
type throttleState struct {
	mu      sync.Mutex
	clients map[string]*throttleClient
}

type throttleClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (s *throttleState) limiterFor(ip string, r rate.Limit, burst int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[ip]
	if !ok {
		if len(s.clients) >= throttleMaxClients {
			s.pruneLocked()
		}
		c = &throttleClient{limiter: rate.NewLimiter(r, burst)}
		s.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

// pruneLocked drops clients idle longer than throttleIdleExpiry.
func (s *throttleState) pruneLocked() {
	cutoff := time.Now().Add(-throttleIdleExpiry)
	for ip, c := range s.clients {
		if c.lastSeen.Before(cutoff) {
			delete(s.clients, ip)
		}
	}
}

// Throttle applies a per-IP token bucket to the authentication
// endpoints before the shared sliding-window limiter runs. Password
// hashing is expensive, so brute-force traffic is cut off as early in
// the middleware chain as possible. Non-auth paths pass through.
func Throttle(ips middleware.IPExtractor, r rate.Limit, burst int) func(http.Handler) http.Handler {
	if r <= 0 {
		r = DefaultThrottleRate
	}
	if burst <= 0 {
		burst = DefaultThrottleBurst
	}
	state := &throttleState{clients: make(map[string]*throttleClient)}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !strings.HasPrefix(req.URL.Path, "/api/v1/auth/") {
				next.ServeHTTP(w, req)
				return
			}

			ip, err := ips.ExtractIP(req)
			if err != nil {
				ip = req.RemoteAddr
			}

			if !state.limiterFor(ip, r, burst).Allow() {
				w.Header().Set("Retry-After", "1")
				respond.SafeError(w, http.StatusTooManyRequests,
					errors.New("too many authentication requests"))
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
