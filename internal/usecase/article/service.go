package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// maxTagsPerArticle caps the distinct tags one article may carry.
const maxTagsPerArticle = 10

// previewLength is the number of characters of content shown in management
// listings before truncation.
const previewLength = 200

// CreateInput represents the input parameters for creating a news article.
type CreateInput struct {
	Title      string
	Headline   *string
	Content    string
	Source     *string
	CategoryID int64
	Status     bool
	Tags       []string
}

// UpdateInput represents the input parameters for updating a news article.
// Updates are full overwrites; the tag list replaces the existing set.
type UpdateInput struct {
	ID         int64
	Title      string
	Headline   *string
	Content    string
	Source     *string
	CategoryID int64
	Status     bool
	Tags       []string
}

// TagResolver resolves raw tag names to tag rows, creating missing ones.
// Implemented by the tag use case service.
type TagResolver interface {
	Resolve(ctx context.Context, names []string) ([]*entity.Tag, error)
}

// CategoryGetter is the slice of the category repository this service
// needs: existence and status checks on the target category.
type CategoryGetter interface {
	Get(ctx context.Context, id int64) (*entity.Category, error)
}

// Detail is the full projection of one article plus the caller's rights.
type Detail struct {
	Item      *repository.ArticleWithRelations
	CanEdit   bool
	CanDelete bool
}

// ListItem is the management-listing projection: truncated content, tag
// count, and the caller's mutation rights.
type ListItem struct {
	Article       *entity.Article
	CategoryName  string
	CreatedByName string
	Preview       string
	TagCount      int
	CanEdit       bool
	CanDelete     bool
}

// Service provides news article use cases. It owns the lifecycle and
// authorization rules and delegates persistence to the repositories.
type Service struct {
	Repo       repository.ArticleRepository
	Categories CategoryGetter
	Tags       TagResolver
}

// ListActivePublic retrieves the public feed: active articles in active
// categories, newest first, with full content and tags.
func (s *Service) ListActivePublic(ctx context.Context) ([]repository.ArticleWithRelations, error) {
	items, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active articles: %w", err)
	}
	return items, nil
}

// Get retrieves one article. Inactive articles are readable by their owner;
// a logged-in non-owner gets ErrForbidden. An anonymous caller reads
// inactive articles too — the check only fires for authenticated callers.
func (s *Service) Get(ctx context.Context, id int64, caller *entity.Identity) (*Detail, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if item == nil {
		return nil, ErrArticleNotFound
	}

	if !item.Article.Status && caller != nil && !item.Article.IsOwnedBy(caller.AccountID) {
		return nil, ErrForbidden
	}

	owner := caller != nil && item.Article.IsOwnedBy(caller.AccountID)
	return &Detail{Item: item, CanEdit: owner, CanDelete: owner}, nil
}

// ListAll retrieves every article for the management table, content
// truncated and mutation rights derived against the caller.
func (s *Service) ListAll(ctx context.Context, callerID int64) ([]ListItem, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return buildListItems(items, callerID), nil
}

// ListMine retrieves the caller's own articles, truncated like ListAll.
func (s *Service) ListMine(ctx context.Context, callerID int64) ([]ListItem, error) {
	items, err := s.Repo.ListByCreator(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list own articles: %w", err)
	}
	return buildListItems(items, callerID), nil
}

// Search finds articles whose title, content, headline, or tag names
// contain the keyword. A blank keyword returns the full list.
func (s *Service) Search(ctx context.Context, term string, callerID int64) ([]ListItem, error) {
	term = entity.NormalizeName(term)
	if term == "" {
		return s.ListAll(ctx, callerID)
	}
	items, err := s.Repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return buildListItems(items, callerID), nil
}

// Create creates a news article owned by the caller. The category must
// exist and be active, and the deduplicated tag list may not exceed the
// cap. The article row and its tag associations are written atomically.
func (s *Service) Create(ctx context.Context, in CreateInput, callerID int64) (*entity.Article, error) {
	a := &entity.Article{
		Title:       entity.NormalizeName(in.Title),
		Headline:    in.Headline,
		Content:     in.Content,
		Source:      in.Source,
		CategoryID:  in.CategoryID,
		Status:      in.Status,
		CreatedByID: callerID,
		UpdatedByID: callerID,
		CreatedDate: time.Now().UTC(),
	}
	if err := validateFields(a); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	tagIDs, err := s.resolveTags(ctx, in.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, a, tagIDs); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return a, nil
}

// Update overwrites an article. Only the creator may update, regardless of
// role; the tag set is replaced wholesale in the same transaction.
func (s *Service) Update(ctx context.Context, in UpdateInput, callerID int64) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	existing, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return nil, ErrArticleNotFound
	}
	if !existing.Article.IsOwnedBy(callerID) {
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	a := &entity.Article{
		ID:           in.ID,
		Title:        entity.NormalizeName(in.Title),
		Headline:     in.Headline,
		Content:      in.Content,
		Source:       in.Source,
		CategoryID:   in.CategoryID,
		Status:       in.Status,
		CreatedByID:  existing.Article.CreatedByID,
		UpdatedByID:  callerID,
		CreatedDate:  existing.Article.CreatedDate,
		ModifiedDate: &now,
	}
	if err := validateFields(a); err != nil {
		return nil, err
	}
	if _, err := s.requireCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	tagIDs, err := s.resolveTags(ctx, in.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, a, tagIDs); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return a, nil
}

// Delete removes an article. Only the creator may delete; tag associations
// go with it.
func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return ErrArticleNotFound
	}
	if !existing.Article.IsOwnedBy(callerID) {
		return ErrForbidden
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// ToggleStatus flips the publication status and returns the new value.
// Ownership-checked like every other mutation.
func (s *Service) ToggleStatus(ctx context.Context, id, callerID int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidArticleID
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return false, ErrArticleNotFound
	}
	if !existing.Article.IsOwnedBy(callerID) {
		return false, ErrForbidden
	}

	next := !existing.Article.Status
	if err := s.Repo.SetStatus(ctx, id, next); err != nil {
		return false, fmt.Errorf("set article status: %w", err)
	}
	return next, nil
}

// SetStatus sets the publication status to an explicit value. Same
// ownership rule as ToggleStatus.
func (s *Service) SetStatus(ctx context.Context, id, callerID int64, status bool) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return ErrArticleNotFound
	}
	if !existing.Article.IsOwnedBy(callerID) {
		return ErrForbidden
	}

	if err := s.Repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set article status: %w", err)
	}
	return nil
}

// checkCategory requires an existing, active category. Only creation is
// held to the active rule; see requireCategory.
func (s *Service) checkCategory(ctx context.Context, categoryID int64) error {
	c, err := s.requireCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if !c.IsActive {
		return ErrInactiveCategory
	}
	return nil
}

// requireCategory checks existence only. Updates stay possible after a
// category is deactivated, so existing articles remain editable.
func (s *Service) requireCategory(ctx context.Context, categoryID int64) (*entity.Category, error) {
	c, err := s.Categories.Get(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// resolveTags enforces the tag cap on the deduplicated name list before any
// tag row is created, then resolves the survivors to IDs.
func (s *Service) resolveTags(ctx context.Context, names []string) ([]int64, error) {
	if uniqueTagCount(names) > maxTagsPerArticle {
		return nil, ErrTooManyTags
	}

	tags, err := s.Tags.Resolve(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	ids := make([]int64, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func uniqueTagCount(names []string) int {
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := entity.NormalizeName(raw)
		if name == "" {
			continue
		}
		seen[strings.ToLower(name)] = struct{}{}
	}
	return len(seen)
}

func validateFields(a *entity.Article) error {
	if a.Title == "" {
		return &entity.ValidationError{Field: "newsTitle", Message: "title is required"}
	}
	if strings.TrimSpace(a.Content) == "" {
		return &entity.ValidationError{Field: "newsContent", Message: "content is required"}
	}
	if a.CategoryID <= 0 {
		return &entity.ValidationError{Field: "categoryId", Message: "category is required"}
	}
	return nil
}

func buildListItems(items []repository.ArticleWithRelations, callerID int64) []ListItem {
	out := make([]ListItem, 0, len(items))
	for _, item := range items {
		owner := item.Article.IsOwnedBy(callerID)
		out = append(out, ListItem{
			Article:       item.Article,
			CategoryName:  item.CategoryName,
			CreatedByName: item.CreatedByName,
			Preview:       Preview(item.Article.Content),
			TagCount:      len(item.Tags),
			CanEdit:       owner,
			CanDelete:     owner,
		})
	}
	return out
}

// Preview truncates content to the listing length, appending an ellipsis
// only when something was cut. Truncation counts characters, not bytes.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}
