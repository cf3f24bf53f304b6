package entity

import "errors"

// Validation errors returned by entity checks. Handlers map these to
// HTTP 400 responses with the error message as the client-facing detail.
var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrEmailTooLong        = errors.New("email must be at most 254 characters")
	ErrInvalidUsername     = errors.New("username must be 3-20 characters of letters, digits, and underscores")
	ErrReservedUsername    = errors.New("username is reserved")
	ErrWeakPassword        = errors.New("password must be 8-128 characters with upper, lower, digit, and special characters")
	ErrCommonPassword      = errors.New("password is too common")
	ErrMissingPasswordHash = errors.New("password hash is required")

	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name must be at most 200 characters")
	ErrDescriptionTooLong  = errors.New("description must be at most 2000 characters")
	ErrEmptyTitle          = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title must be at most 200 characters")
	ErrEmptyContent        = errors.New("content is required")
	ErrContentTooLong      = errors.New("content must be at most 50000 characters")
	ErrAuthorTooLong       = errors.New("author must be at most 100 characters")
	ErrCategoryTooLong     = errors.New("category must be at most 100 characters")
	ErrUnsafeContent       = errors.New("content contains potentially unsafe markup")

	ErrNegativePrice       = errors.New("price must not be negative")
	ErrPriceTooLarge       = errors.New("price exceeds the allowed maximum")
	ErrInvalidQuantity     = errors.New("quantity must be between 1 and 1000")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrMissingUserID       = errors.New("user id is required")
	ErrMissingItemID       = errors.New("item id is required")
)

var validationErrors = []error{
	ErrInvalidEmail, ErrEmailTooLong, ErrInvalidUsername, ErrReservedUsername,
	ErrWeakPassword, ErrCommonPassword, ErrMissingPasswordHash,
	ErrEmptyName, ErrNameTooLong, ErrDescriptionTooLong,
	ErrEmptyTitle, ErrTitleTooLong, ErrEmptyContent, ErrContentTooLong,
	ErrAuthorTooLong, ErrCategoryTooLong, ErrUnsafeContent,
	ErrNegativePrice, ErrPriceTooLarge, ErrInvalidQuantity,
	ErrInvalidOrderStatus, ErrMissingUserID, ErrMissingItemID,
}

// IsValidation reports whether err is one of the entity validation
// errors, so handlers can distinguish a 400 from an internal failure.
func IsValidation(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
