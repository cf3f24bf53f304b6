// Package pathutil provides helpers for extracting resource IDs from
// URL paths and normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractUUID extracts a UUID from a URL path after removing the
// given prefix.
//
// Example:
//
//	id, err := ExtractUUID("/api/v1/items/550e8400-e29b-41d4-a716-446655440000", "/api/v1/items/")
func ExtractUUID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		return "", ErrInvalidID
	}
	parsed, err := uuid.Parse(idStr)
	if err != nil {
		return "", ErrInvalidID
	}
	return parsed.String(), nil
}
