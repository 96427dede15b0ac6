package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type AccountRepository interface {
	// List retrieves all accounts ordered by name.
	List(ctx context.Context) ([]*entity.Account, error)
	// Get returns (nil, nil) when the id does not resolve.
	Get(ctx context.Context, id int64) (*entity.Account, error)
	// GetByEmail matches case-insensitively and returns (nil, nil) when
	// absent.
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Search performs a case-insensitive substring match on name or email.
	Search(ctx context.Context, term string) ([]*entity.Account, error)
	// EmailExists reports a case-insensitive email collision, skipping
	// excludeID (pass 0 to check all rows).
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, a *entity.Account) error
	Update(ctx context.Context, a *entity.Account) error
	Delete(ctx context.Context, id int64) error
	// HasArticles reports whether the account authored any article, which
	// blocks deletion.
	HasArticles(ctx context.Context, id int64) (bool, error)
}
