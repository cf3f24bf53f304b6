// Package pagination provides offset-based pagination shared by all list
// endpoints. Pages are 1-based and responses carry a uniform envelope.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage int // Default page number (typically 1)
	DefaultSize int // Default items per page (typically 10)
	MaxSize     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPage: 1,
		DefaultSize: 10,
		MaxSize:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables,
// falling back to DefaultConfig values when unset.
//
// Supported variables:
//   - PAGINATION_DEFAULT_PAGE
//   - PAGINATION_DEFAULT_SIZE
//   - PAGINATION_MAX_SIZE
func LoadFromEnv() Config {
	return Config{
		DefaultPage: getEnvAsInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultSize: getEnvAsInt("PAGINATION_DEFAULT_SIZE", 10),
		MaxSize:     getEnvAsInt("PAGINATION_MAX_SIZE", 100),
	}
}

func getEnvAsInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			return val
		}
	}
	return fallback
}
