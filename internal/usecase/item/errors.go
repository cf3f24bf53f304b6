// Package item provides use cases for catalog item management, including
// the read-through cache in front of the item repository.
package item

import "errors"

// Sentinel errors for item use case operations.
var (
	// ErrItemNotFound indicates that the requested item was not found.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemID indicates that the provided item ID is empty or malformed.
	ErrInvalidItemID = errors.New("invalid item ID")

	// ErrInvalidPriceRange indicates min_price greater than max_price.
	ErrInvalidPriceRange = errors.New("min_price must not exceed max_price")
)
