// Package account provides use cases for managing system accounts.
// Account administration is an Admin-only surface; passwords are stored as
// bcrypt hashes.
package account

import "errors"

// Sentinel errors for account use case operations.
var (
	// ErrAccountNotFound indicates that the requested account was not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountID indicates that the provided account ID is invalid.
	ErrInvalidAccountID = errors.New("invalid account ID")

	// ErrDuplicateEmail indicates that another account already uses the
	// email address. Comparison is case-insensitive.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidRole indicates a role outside the assignable set. Only
	// Staff and Lecturer can be stored; Admin exists out of band.
	ErrInvalidRole = errors.New("role must be Staff or Lecturer")

	// ErrHasArticles blocks deletion of an account that authored articles.
	ErrHasArticles = errors.New("cannot delete account: it has authored news articles")
)
