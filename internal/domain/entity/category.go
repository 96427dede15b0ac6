// Package entity defines the core domain entities and validation logic for
// the application. It contains the fundamental business objects such as
// Category, Article, Account and Tag, along with their validation rules and
// domain-specific errors.
package entity

// Category represents a node in the self-referencing category hierarchy.
// A nil ParentID marks a root category. The parent chain is kept acyclic by
// the category use case; nothing below that layer assumes it.
type Category struct {
	ID          int64
	Name        string
	Description *string
	ParentID    *int64
	IsActive    bool
}
