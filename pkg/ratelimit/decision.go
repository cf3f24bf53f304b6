package ratelimit

import (
	"math"
	"time"
)

// Decision is the outcome of a limiter check, with the values needed
// to populate X-RateLimit-* and Retry-After response headers.
type Decision struct {
	Allowed   bool
	Rule      string
	Limit     int
	Remaining int
	ResetAt   time.Time
	decidedAt time.Time
}

func allowedDecision(rule Rule, remaining int, now time.Time) Decision {
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   true,
		Rule:      rule.Name,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetAt:   now.Add(rule.Window),
		decidedAt: now,
	}
}

func deniedDecision(rule Rule, resetAt, now time.Time) Decision {
	return Decision{
		Allowed:   false,
		Rule:      rule.Name,
		Limit:     rule.Limit,
		Remaining: 0,
		ResetAt:   resetAt,
		decidedAt: now,
	}
}

// RetryAfterSeconds returns the Retry-After header value, rounded up
// so clients never retry early. Minimum 1 second.
func (d Decision) RetryAfterSeconds() int {
	secs := int(math.Ceil(d.ResetAt.Sub(d.decidedAt).Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// ResetAtUnix returns the window reset time as a Unix timestamp for
// the X-RateLimit-Reset header.
func (d Decision) ResetAtUnix() int64 {
	return d.ResetAt.Unix()
}
