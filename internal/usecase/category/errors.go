// Package category provides use cases for managing the category hierarchy.
// It implements business logic for creating, updating, deleting, and querying
// categories, including the acyclic parent-chain and deletion-guard rules.
package category

import "errors"

// Sentinel errors for category use case operations.
var (
	// ErrCategoryNotFound indicates that the requested category was not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryID indicates that the provided category ID is invalid.
	// Category IDs must be positive integers.
	ErrInvalidCategoryID = errors.New("invalid category ID")

	// ErrDuplicateName indicates that another category already carries the
	// same name. Name comparison is case-insensitive.
	ErrDuplicateName = errors.New("a category with this name already exists")

	// ErrParentNotFound indicates that the referenced parent category does
	// not exist.
	ErrParentNotFound = errors.New("parent category not found")

	// ErrCircularReference indicates that the requested parent assignment
	// would close a cycle in the hierarchy, including a category pointing at
	// itself.
	ErrCircularReference = errors.New("parent assignment would create a circular reference")

	// ErrHasArticles blocks deletion of a category that still has news
	// articles. Checked before the subcategory guard.
	ErrHasArticles = errors.New("cannot delete category: it has associated news articles")

	// ErrHasSubcategories blocks deletion of a category that still has
	// subcategories.
	ErrHasSubcategories = errors.New("cannot delete category: it has subcategories")
)
