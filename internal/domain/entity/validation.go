package entity

import (
	"net/mail"
	"strings"
	"unicode"
)

const (
	maxEmailLength       = 254
	maxNameLength        = 200
	maxDescriptionLength = 2000
	maxTitleLength       = 200
	maxContentLength     = 50000
	maxAuthorLength      = 100
	maxCategoryLength    = 100
	maxPrice             = 1_000_000
	maxQuantity          = 1000

	minPasswordLength = 8
	maxPasswordLength = 128
	minUsernameLength = 3
	maxUsernameLength = 20
)

// reservedUsernames can never be registered. The list mirrors names that
// collide with infrastructure or ambiguous client-side values.
var reservedUsernames = map[string]struct{}{
	"admin": {}, "root": {}, "api": {}, "www": {}, "mail": {}, "ftp": {},
	"test": {}, "guest": {}, "anonymous": {}, "null": {}, "undefined": {},
	"system": {},
}

// commonPasswords are rejected outright regardless of character classes.
var commonPasswords = map[string]struct{}{
	"password": {}, "12345678": {}, "qwerty": {}, "abc123": {},
	"password123": {}, "admin123": {}, "letmein": {}, "welcome": {},
	"monkey": {}, "dragon": {},
}

// xssPatterns flag markup that has no place in plain catalog text.
// Matching is case-insensitive on the lowercased input.
var xssPatterns = []string{
	"<script", "</script", "javascript:", "vbscript:", "onerror=",
	"onload=", "onclick=", "onmouseover=", "<iframe", "<object",
	"<embed", "eval(", "expression(", "data:text/html",
}

// ValidateEmail checks RFC 5322 address syntax and the length cap.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	if !strings.Contains(email, ".") {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateUsername enforces length, character set, underscore placement,
// and the reserved-name list.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return ErrInvalidUsername
		}
	}
	if strings.HasPrefix(username, "_") || strings.HasSuffix(username, "_") {
		return ErrInvalidUsername
	}
	if strings.Contains(username, "__") {
		return ErrInvalidUsername
	}
	if _, reserved := reservedUsernames[strings.ToLower(username)]; reserved {
		return ErrReservedUsername
	}
	return nil
}

func isUsernameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_'
}

// ValidatePassword enforces the password policy: length bounds, all four
// character classes, and the common-password blacklist.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrWeakPassword
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		return ErrCommonPassword
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}

// ContainsUnsafeMarkup reports whether s matches any known XSS pattern.
func ContainsUnsafeMarkup(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range xssPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func validateText(s string, max int, emptyErr, longErr error) error {
	trimmed := strings.TrimSpace(s)
	if emptyErr != nil && trimmed == "" {
		return emptyErr
	}
	if len(s) > max {
		return longErr
	}
	if ContainsUnsafeMarkup(s) {
		return ErrUnsafeContent
	}
	return nil
}

// ValidateName checks an item name.
func ValidateName(s string) error {
	return validateText(s, maxNameLength, ErrEmptyName, ErrNameTooLong)
}

// ValidateDescription checks an item description. Empty is allowed.
func ValidateDescription(s string) error {
	return validateText(s, maxDescriptionLength, nil, ErrDescriptionTooLong)
}

// ValidateTitle checks an article title.
func ValidateTitle(s string) error {
	return validateText(s, maxTitleLength, ErrEmptyTitle, ErrTitleTooLong)
}

// ValidateContent checks an article body.
func ValidateContent(s string) error {
	return validateText(s, maxContentLength, ErrEmptyContent, ErrContentTooLong)
}

// ValidateAuthor checks an article author name. Empty is allowed.
func ValidateAuthor(s string) error {
	return validateText(s, maxAuthorLength, nil, ErrAuthorTooLong)
}

// ValidateCategory checks an item category. Empty is allowed.
func ValidateCategory(s string) error {
	return validateText(s, maxCategoryLength, nil, ErrCategoryTooLong)
}

// ValidatePrice bounds a unit price.
func ValidatePrice(p float64) error {
	if p < 0 {
		return ErrNegativePrice
	}
	if p > maxPrice {
		return ErrPriceTooLarge
	}
	return nil
}

// ValidateAmount bounds an order total. Totals share the price ceiling.
func ValidateAmount(a float64) error {
	return ValidatePrice(a)
}

// ValidateQuantity bounds an order line quantity.
func ValidateQuantity(q int) error {
	if q < 1 || q > maxQuantity {
		return ErrInvalidQuantity
	}
	return nil
}
