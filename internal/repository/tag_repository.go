package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type TagRepository interface {
	// List retrieves all tags ordered by name.
	List(ctx context.Context) ([]*entity.Tag, error)
	// SearchByName performs a case-insensitive substring match on tag names.
	SearchByName(ctx context.Context, term string) ([]*entity.Tag, error)
	// GetOrCreate resolves a trimmed tag name case-insensitively, inserting
	// a new row when absent. The insert must be race-safe: a concurrent
	// creation of the same name yields the existing row, never a duplicate.
	GetOrCreate(ctx context.Context, name string) (*entity.Tag, error)
	// SyncArticleTags replaces the article's full association set with the
	// given tag IDs (delete-all-then-insert-all).
	SyncArticleTags(ctx context.Context, articleID int64, tagIDs []int64) error
}
