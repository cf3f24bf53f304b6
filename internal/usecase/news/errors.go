// Package news provides use cases for the news articles published
// alongside the catalog.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is empty or malformed.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
