package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns defines the list of patterns for dynamic routes.
// Pre-compiled at initialization so normalization stays cheap on the
// request path.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/v1/users/` + uuidSegment + `$`), Template: "/api/v1/users/:id"},
	{Pattern: regexp.MustCompile(`^/api/v1/items/` + uuidSegment + `$`), Template: "/api/v1/items/:id"},
	{Pattern: regexp.MustCompile(`^/api/v1/orders/` + uuidSegment + `$`), Template: "/api/v1/orders/:id"},
	{Pattern: regexp.MustCompile(`^/api/v1/news/` + uuidSegment + `$`), Template: "/api/v1/news/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with resource IDs collapse to template
// form (e.g. /api/v1/items/:id); static paths pass through unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/api/v1/items/550e8400-e29b-41d4-a716-446655440000") // "/api/v1/items/:id"
//	NormalizePath("/api/v1/items?page=2")                               // "/api/v1/items"
//	NormalizePath("/health")                                            // "/health"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Unmatched paths pass through, static endpoints like /health and
	// /metrics stay readable in metrics.
	return path
}
