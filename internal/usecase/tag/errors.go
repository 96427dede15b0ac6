// Package tag provides use cases for resolving and querying tags.
// Tags are shared across articles and identified case-insensitively by name.
package tag

import "errors"

// Sentinel errors for tag use case operations.
var (
	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
