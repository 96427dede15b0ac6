package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleWithRelations carries an article together with the display fields
// every projection needs: category name, creator identity and the tag set.
// Hydrating in one place keeps the N+1 lookups out of the use case layer.
type ArticleWithRelations struct {
	Article        *entity.Article
	CategoryName   string
	CategoryDesc   string
	CreatedByName  string
	CreatedByEmail string
	Tags           []entity.Tag
}

type ArticleRepository interface {
	// ListActive retrieves articles with status = true whose category is
	// also active, newest first. This is the public listing.
	ListActive(ctx context.Context) ([]ArticleWithRelations, error)
	// List retrieves every article regardless of status, newest first.
	List(ctx context.Context) ([]ArticleWithRelations, error)
	// ListByCreator retrieves the articles a given account authored,
	// newest first.
	ListByCreator(ctx context.Context, accountID int64) ([]ArticleWithRelations, error)
	// Get returns (nil, nil) when the id does not resolve. Inactive
	// articles are included; visibility is decided above this layer.
	Get(ctx context.Context, id int64) (*ArticleWithRelations, error)
	// Search performs a case-insensitive substring match across title,
	// content, headline and associated tag names.
	Search(ctx context.Context, term string) ([]ArticleWithRelations, error)
	// Create inserts the article and attaches the given tag IDs in a single
	// transaction, so a failure cannot leave an article without its tags.
	Create(ctx context.Context, a *entity.Article, tagIDs []int64) error
	// Update overwrites the article row and replaces its tag associations
	// wholesale (delete-all-then-insert-all) in a single transaction.
	Update(ctx context.Context, a *entity.Article, tagIDs []int64) error
	// Delete removes the article; tag associations cascade at the schema
	// level.
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status bool) error
}
