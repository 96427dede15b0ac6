package entity

import (
	"fmt"
	"net/mail"
	"strings"
)

// Field length limits enforced before anything reaches the store.
const (
	maxCategoryNameLength = 100
	maxCategoryDescLength = 500
	maxTagNameLength      = 100
	minPasswordLength     = 8
)

// ValidateCategoryName validates a category name: required after trimming,
// bounded length. Uniqueness is checked against the store, not here.
func ValidateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Field: "categoryName", Message: "is required"}
	}
	if len(trimmed) > maxCategoryNameLength {
		return &ValidationError{
			Field:   "categoryName",
			Message: fmt.Sprintf("must not exceed %d characters", maxCategoryNameLength),
		}
	}
	return nil
}

// ValidateCategoryDescription validates the optional category description.
func ValidateCategoryDescription(desc string) error {
	if len(desc) > maxCategoryDescLength {
		return &ValidationError{
			Field:   "categoryDescription",
			Message: fmt.Sprintf("must not exceed %d characters", maxCategoryDescLength),
		}
	}
	return nil
}

// ValidateEmail validates the syntactic shape of an account email.
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

// ValidatePassword enforces the minimum password length for stored accounts.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		}
	}
	return nil
}

// ValidateTagName validates a tag name after trimming.
func ValidateTagName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Field: "tagName", Message: "is required"}
	}
	if len(trimmed) > maxTagNameLength {
		return &ValidationError{
			Field:   "tagName",
			Message: fmt.Sprintf("must not exceed %d characters", maxTagNameLength),
		}
	}
	return nil
}

// NormalizeName trims a name for case-insensitive comparisons. Matching
// itself is done with strings.EqualFold or lower() in SQL; this only strips
// the surrounding whitespace clients tend to send.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
