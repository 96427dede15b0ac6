package tag

import (
	"context"
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Service provides tag resolution use cases. Uniqueness is enforced by
// name, case-insensitively; the repository guarantees that concurrent
// resolution of the same name converges on a single row.
type Service struct {
	Repo repository.TagRepository
}

// ListAll retrieves all tags ordered by name.
func (s *Service) ListAll(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// Search finds tags whose name contains the keyword. A blank keyword
// returns the full list.
func (s *Service) Search(ctx context.Context, term string) ([]*entity.Tag, error) {
	term = entity.NormalizeName(term)
	if term == "" {
		return s.ListAll(ctx)
	}
	tags, err := s.Repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search tags: %w", err)
	}
	return tags, nil
}

// GetOrCreate resolves a single tag name to its row, creating it when
// absent. Returns a ValidationError for blank or over-long names.
func (s *Service) GetOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	name = entity.NormalizeName(name)
	if err := entity.ValidateTagName(name); err != nil {
		return nil, err
	}
	t, err := s.Repo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get or create tag: %w", err)
	}
	return t, nil
}

// Resolve turns a list of raw tag names into tag rows: names are trimmed,
// blanks dropped, and case-insensitive duplicates collapsed to their first
// occurrence before each survivor is resolved via GetOrCreate.
func (s *Service) Resolve(ctx context.Context, names []string) ([]*entity.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]*entity.Tag, 0, len(names))
	for _, raw := range names {
		name := entity.NormalizeName(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		t, err := s.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// SyncForArticle replaces an article's tag associations wholesale.
func (s *Service) SyncForArticle(ctx context.Context, articleID int64, tagIDs []int64) error {
	if articleID <= 0 {
		return ErrInvalidArticleID
	}
	if err := s.Repo.SyncArticleTags(ctx, articleID, tagIDs); err != nil {
		return fmt.Errorf("sync article tags: %w", err)
	}
	return nil
}
