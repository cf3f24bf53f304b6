// Package order provides use cases for order management: placing orders
// against current catalog prices and moving them through the status
// pipeline.
package order

import "errors"

// Sentinel errors for order use case operations.
var (
	// ErrOrderNotFound indicates that the requested order was not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrderID indicates that the provided order ID is empty or malformed.
	ErrInvalidOrderID = errors.New("invalid order ID")

	// ErrEmptyOrder indicates an order with no lines.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrUnknownItem indicates an order line referencing an item that
	// does not exist in the catalog.
	ErrUnknownItem = errors.New("order references an unknown item")

	// ErrForbidden indicates an attempt to access another user's order.
	ErrForbidden = errors.New("order belongs to another user")

	// ErrInvalidStatusTransition indicates a status change that the
	// pipeline does not allow, such as reviving a cancelled order.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)
