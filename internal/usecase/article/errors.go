// Package article provides use cases for the news article lifecycle.
// It implements creation, ownership-gated mutation, status toggling, and
// the public and management projections of articles.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("news article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid news article ID")

	// ErrForbidden indicates that the caller does not own the article.
	// Mutation rights belong to the creator alone; roles are not consulted.
	ErrForbidden = errors.New("only the creator may modify this article")

	// ErrCategoryNotFound indicates that the referenced category does not
	// exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInactiveCategory indicates that the referenced category exists but
	// is inactive and cannot receive articles.
	ErrInactiveCategory = errors.New("category is inactive")

	// ErrTooManyTags indicates that the request carries more than the
	// allowed number of distinct tags.
	ErrTooManyTags = errors.New("an article may carry at most 10 tags")
)
