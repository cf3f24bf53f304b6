package http

import (
	"context"
	"log/slog"
	"time"

	"mig-catalog/internal/service/auth"
	"mig-catalog/pkg/config"
	"mig-catalog/pkg/ratelimit"
)

// DefaultCleanupInterval is the default cleanup interval if not specified.
const DefaultCleanupInterval = 5 * time.Minute

// StartRateLimitCleanup runs periodic cleanup of the rate limit store
// and the login lockout tracker. It prevents memory growth from
// one-off client IPs and stops when the context is cancelled.
func StartRateLimitCleanup(
	ctx context.Context,
	limiter *ratelimit.Limiter,
	lockouts *auth.LockoutTracker,
	interval time.Duration,
	maxWindow time.Duration,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.Duration("interval", interval),
		slog.Duration("max_window", maxWindow))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return

		case <-ticker.C:
			// 2x window keeps data needed around window edges
			if err := limiter.Cleanup(ctx, 2*maxWindow); err != nil {
				slog.Error("rate limit cleanup failed", slog.Any("error", err))
			}

			removed := 0
			if lockouts != nil {
				removed = lockouts.Sweep()
			}

			slog.Debug("rate limit cleanup completed",
				slog.Int("lockout_entries_removed", removed))
		}
	}
}

// LoadCleanupInterval reads the cleanup interval from
// RATELIMIT_CLEANUP_INTERVAL, falling back to the default.
func LoadCleanupInterval() time.Duration {
	return config.GetEnvDuration("RATELIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval)
}
