package pagination

import (
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page int // 1-based page number
	Size int // Items per page
}

// ParseQueryParams parses page and size from the request query string.
// Invalid or out-of-range values fall back to the configured defaults;
// a size above MaxSize is clamped rather than rejected so clients never
// get an error for asking too much.
func ParseQueryParams(r *http.Request, config Config) Params {
	params := Params{
		Page: config.DefaultPage,
		Size: config.DefaultSize,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			params.Page = page
		}
	}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size >= 1 {
			if size > config.MaxSize {
				size = config.MaxSize
			}
			params.Size = size
		}
	}

	return params
}

// Offset returns the database OFFSET for these parameters.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}
