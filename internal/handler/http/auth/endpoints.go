package auth

import (
	"net/http"
	"strings"
)

// PublicEndpoints defines endpoints that don't require authentication.
//
// Justification for each public endpoint:
// - /health, /ready, /live: orchestration health checks (Kubernetes, monitoring)
// - /metrics: Prometheus scraping
// - /swagger/: API documentation
// - /api/v1/auth/login, /api/v1/auth/register: can't require a token to get a token
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/api/v1/auth/login",
	"/api/v1/auth/register",
}

// publicReadPrefixes lists resources whose GET endpoints are open to
// anonymous clients. The catalog and published news are browsable
// without an account; writes still require authentication.
var publicReadPrefixes = []string{
	"/api/v1/items",
	"/api/v1/news",
}

// IsPublicEndpoint checks if a request may proceed without authentication.
//
// Matching logic:
// - Endpoints ending with '/' use prefix matching (e.g. /swagger/* matches /swagger/index.html)
// - Endpoints without '/' require exact match, trailing slash, or query params only
// - GET and HEAD requests to the public read resources are allowed anonymously
func IsPublicEndpoint(method, path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		// Exact match only, /health must not match /healthcheck
		if path == endpoint || path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}

	if method == http.MethodGet || method == http.MethodHead {
		for _, prefix := range publicReadPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") || strings.HasPrefix(path, prefix+"?") {
				return true
			}
		}
	}

	return false
}
