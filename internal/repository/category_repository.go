// Package repository defines the persistence contracts consumed by the use
// case layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// CategoryWithParent pairs a category with the resolved name of its parent,
// empty for root categories.
type CategoryWithParent struct {
	Category   *entity.Category
	ParentName string
}

type CategoryRepository interface {
	// List retrieves all categories ordered by name, each with its parent's
	// name resolved.
	List(ctx context.Context) ([]CategoryWithParent, error)
	// ListActive retrieves categories with is_active = true, ordered by name.
	ListActive(ctx context.Context) ([]*entity.Category, error)
	// Get returns (nil, nil) when the id does not resolve.
	Get(ctx context.Context, id int64) (*entity.Category, error)
	// Search performs a case-insensitive substring match on name or
	// description. Blank terms are handled by the caller.
	Search(ctx context.Context, term string) ([]CategoryWithParent, error)
	// SearchPaged is the offset/limit variant of Search; CountSearch returns
	// the total for the same term so callers can build pagination metadata.
	SearchPaged(ctx context.Context, term string, offset, limit int) ([]CategoryWithParent, error)
	CountSearch(ctx context.Context, term string) (int64, error)
	// NameExists reports a case-insensitive name collision. excludeID skips
	// one category (the one being updated); pass 0 to check all rows.
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, active bool) error
	// ListRoots returns categories with no parent, ordered by name.
	ListRoots(ctx context.Context) ([]*entity.Category, error)
	// ListChildren returns the direct children of a category, ordered by name.
	ListChildren(ctx context.Context, parentID int64) ([]*entity.Category, error)
	// ArticleCount returns the number of articles referencing the category.
	ArticleCount(ctx context.Context, id int64) (int64, error)
	// ArticleCounts returns article counts keyed by category id in one round
	// trip; categories with no articles are absent from the map.
	ArticleCounts(ctx context.Context) (map[int64]int64, error)
	// ChildCounts is the batch form of ChildCount, keyed by parent id.
	ChildCounts(ctx context.Context) (map[int64]int64, error)
	// ChildCount returns the number of categories whose parent is id.
	ChildCount(ctx context.Context, id int64) (int64, error)
}
