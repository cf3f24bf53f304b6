package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Environment names recognized by Settings.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

var errWeakSecret = errors.New("SECRET_KEY is too weak")

// Settings holds the application configuration read from the
// environment. Load validates it; a process must not start with an
// invalid Settings.
type Settings struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8000"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL"`

	SecretKey         string        `env:"SECRET_KEY,required,unset"`
	SecretKeyRotation string        `env:"SECRET_KEY_ROTATION,unset"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"30m"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	RateLimitEnabled   bool   `env:"RATELIMIT_ENABLED" envDefault:"true"`
	RateLimitRulesPath string `env:"RATELIMIT_RULES_FILE"`

	TracingEnabled bool `env:"TRACING_ENABLED" envDefault:"false"`
}

// Load reads Settings from the environment and validates it.
func Load() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &s, nil
}

// Validate enforces the invariants Load relies on. It is exported so
// tests can construct Settings directly.
func (s *Settings) Validate() error {
	switch s.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("unknown ENVIRONMENT %q", s.Environment)
	}

	if err := validateSecret(s.SecretKey); err != nil {
		return err
	}
	if s.SecretKeyRotation != "" {
		if err := validateSecret(s.SecretKeyRotation); err != nil {
			return fmt.Errorf("SECRET_KEY_ROTATION: %w", err)
		}
		if s.SecretKeyRotation == s.SecretKey {
			return errors.New("SECRET_KEY_ROTATION must differ from SECRET_KEY")
		}
	}

	if s.TokenTTL <= 0 || s.TokenTTL > time.Hour {
		return fmt.Errorf("TOKEN_TTL must be within (0, 1h], got %v", s.TokenTTL)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", s.RequestTimeout)
	}

	if s.IsProduction() {
		if s.Debug {
			return errors.New("DEBUG must be false in production")
		}
		if isLoopbackURL(s.DatabaseURL) {
			return errors.New("DATABASE_URL must not point at localhost in production")
		}
		if s.RedisURL != "" && isLoopbackURL(s.RedisURL) {
			return errors.New("REDIS_URL must not point at localhost in production")
		}
		if s.SecretKeyRotation == "" {
			slog.Warn("SECRET_KEY_ROTATION is not set; key rotation is unavailable")
		}
		for _, origin := range s.CORSOrigins {
			if origin == "*" {
				return errors.New("CORS_ORIGINS must not contain a wildcard in production")
			}
			if strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
				return fmt.Errorf("CORS origin %q is not allowed in production", origin)
			}
		}
	}
	return nil
}

func isLoopbackURL(url string) bool {
	return strings.Contains(url, "localhost") || strings.Contains(url, "127.0.0.1")
}

// IsProduction reports whether the process runs with production
// safeguards enabled.
func (s *Settings) IsProduction() bool {
	return s.Environment == EnvProduction
}

// validateSecret rejects signing keys that are short or obviously
// placeholder values.
func validateSecret(secret string) error {
	if len(secret) < 64 {
		return fmt.Errorf("%w: need at least 64 characters, got %d", errWeakSecret, len(secret))
	}
	lowered := strings.ToLower(secret)
	for _, pattern := range []string{"secret", "password", "123456", "changeme", "default", "example", "admin", "test", "key"} {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("%w: contains placeholder text %q", errWeakSecret, pattern)
		}
	}
	if isRepetitive(secret) {
		return fmt.Errorf("%w: not enough distinct characters", errWeakSecret)
	}
	return nil
}

// isRepetitive reports whether the string is built from too few
// distinct characters to be a real key.
func isRepetitive(s string) bool {
	distinct := make(map[rune]struct{}, len(s))
	for _, r := range s {
		distinct[r] = struct{}{}
	}
	return len(distinct) < 8
}
