package category

import (
	"context"
	"fmt"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new category.
type CreateInput struct {
	Name        string
	Description *string
	ParentID    *int64
	IsActive    bool
}

// UpdateInput represents the input parameters for updating an existing
// category. Updates are full overwrites.
type UpdateInput struct {
	ID          int64
	Name        string
	Description *string
	ParentID    *int64
	IsActive    bool
}

// View is the management projection of a category: the entity plus the
// resolved parent name, live usage counts, and the derived deletability.
type View struct {
	Category         *entity.Category
	ParentName       string
	NewsArticleCount int64
	SubCategoryCount int64
	CanDelete        bool
}

// Detail pairs a category with its direct subcategories.
type Detail struct {
	Category      *entity.Category
	ParentName    string
	SubCategories []*entity.Category
}

// PaginatedResult represents the result of a paginated category search.
type PaginatedResult struct {
	Data       []View
	Pagination pagination.Metadata
}

// Service provides category hierarchy use cases.
// It handles business logic for category operations and delegates
// persistence to the repository.
type Service struct {
	Repo repository.CategoryRepository
}

// ListAll retrieves every category with parent name, usage counts, and the
// derived CanDelete flag, ordered by name.
func (s *Service) ListAll(ctx context.Context) ([]View, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return s.buildViews(ctx, rows)
}

// ListActive retrieves categories available for article assignment.
func (s *Service) ListActive(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	return categories, nil
}

// Get retrieves a single category together with its direct subcategories.
// Returns ErrInvalidCategoryID if the ID is not positive.
// Returns ErrCategoryNotFound if the category does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	detail := &Detail{Category: c}
	if c.ParentID != nil {
		parent, err := s.Repo.Get(ctx, *c.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent category: %w", err)
		}
		if parent != nil {
			detail.ParentName = parent.Name
		}
	}

	children, err := s.Repo.ListChildren(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	detail.SubCategories = children
	return detail, nil
}

// Search finds categories whose name or description contains the keyword.
// A blank keyword returns the full list.
func (s *Service) Search(ctx context.Context, term string) ([]View, error) {
	term = entity.NormalizeName(term)
	if term == "" {
		return s.ListAll(ctx)
	}
	rows, err := s.Repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	return s.buildViews(ctx, rows)
}

// SearchPaged is the offset/limit variant of Search, returning the matching
// page alongside pagination metadata.
func (s *Service) SearchPaged(ctx context.Context, term string, params pagination.Params) (*PaginatedResult, error) {
	term = entity.NormalizeName(term)

	total, err := s.Repo.CountSearch(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	rows, err := s.Repo.SearchPaged(ctx, term, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("search categories paged: %w", err)
	}
	views, err := s.buildViews(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &PaginatedResult{
		Data:       views,
		Pagination: pagination.NewMetadata(total, params),
	}, nil
}

// Create creates a new category with the provided input.
// Returns a ValidationError if any input field is invalid.
// Returns ErrDuplicateName when another category already uses the name.
// Returns ErrParentNotFound when the referenced parent does not exist.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	c := &entity.Category{
		Name:        entity.NormalizeName(in.Name),
		Description: in.Description,
		ParentID:    in.ParentID,
		IsActive:    in.IsActive,
	}
	if err := s.validateFields(c); err != nil {
		return nil, err
	}

	exists, err := s.Repo.NameExists(ctx, c.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateName
	}

	if c.ParentID != nil {
		parent, err := s.Repo.Get(ctx, *c.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent category: %w", err)
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// Update overwrites an existing category.
// Returns ErrCategoryNotFound if the category does not exist.
// Returns ErrDuplicateName when the new name collides with another category.
// Returns ErrParentNotFound / ErrCircularReference for invalid parents.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Category, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidCategoryID
	}

	existing, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if existing == nil {
		return nil, ErrCategoryNotFound
	}

	c := &entity.Category{
		ID:          in.ID,
		Name:        entity.NormalizeName(in.Name),
		Description: in.Description,
		ParentID:    in.ParentID,
		IsActive:    in.IsActive,
	}
	if err := s.validateFields(c); err != nil {
		return nil, err
	}

	exists, err := s.Repo.NameExists(ctx, c.Name, c.ID)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateName
	}

	if c.ParentID != nil {
		if err := s.validateParent(ctx, c.ID, *c.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// validateParent rejects a parent assignment that would close a cycle. It
// walks the parent chain upward from the candidate; hitting the category
// being updated means the candidate sits in its subtree. The stored
// hierarchy is acyclic, so the walk terminates.
func (s *Service) validateParent(ctx context.Context, id, parentID int64) error {
	if parentID == id {
		return ErrCircularReference
	}

	current := parentID
	for {
		node, err := s.Repo.Get(ctx, current)
		if err != nil {
			return fmt.Errorf("walk parent chain: %w", err)
		}
		if node == nil {
			if current == parentID {
				return ErrParentNotFound
			}
			return nil
		}
		if node.ID == id {
			return ErrCircularReference
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
}

// CanDelete reports whether the category could be deleted right now: it
// exists and nothing references it.
// Returns ErrCategoryNotFound if the category does not exist.
func (s *Service) CanDelete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidCategoryID
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get category: %w", err)
	}
	if existing == nil {
		return false, ErrCategoryNotFound
	}

	articles, err := s.Repo.ArticleCount(ctx, id)
	if err != nil {
		return false, fmt.Errorf("count category articles: %w", err)
	}
	children, err := s.Repo.ChildCount(ctx, id)
	if err != nil {
		return false, fmt.Errorf("count subcategories: %w", err)
	}
	return articles == 0 && children == 0, nil
}

// Delete removes a category.
// Returns ErrCategoryNotFound if the category does not exist.
// Returns ErrHasArticles when articles still reference it; the article guard
// runs before the subcategory guard so callers see the article message first.
// Returns ErrHasSubcategories when subcategories remain.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCategoryID
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if existing == nil {
		return ErrCategoryNotFound
	}

	articles, err := s.Repo.ArticleCount(ctx, id)
	if err != nil {
		return fmt.Errorf("count category articles: %w", err)
	}
	if articles > 0 {
		return ErrHasArticles
	}

	children, err := s.Repo.ChildCount(ctx, id)
	if err != nil {
		return fmt.Errorf("count subcategories: %w", err)
	}
	if children > 0 {
		return ErrHasSubcategories
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ToggleStatus flips the active flag and returns the new value.
// Returns ErrCategoryNotFound if the category does not exist.
func (s *Service) ToggleStatus(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidCategoryID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return false, ErrCategoryNotFound
	}

	next := !c.IsActive
	if err := s.Repo.SetStatus(ctx, id, next); err != nil {
		return false, fmt.Errorf("set category status: %w", err)
	}
	return next, nil
}

// SetStatus sets the active flag to an explicit value.
// Returns ErrCategoryNotFound if the category does not exist.
func (s *Service) SetStatus(ctx context.Context, id int64, active bool) error {
	if id <= 0 {
		return ErrInvalidCategoryID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return ErrCategoryNotFound
	}

	if err := s.Repo.SetStatus(ctx, id, active); err != nil {
		return fmt.Errorf("set category status: %w", err)
	}
	return nil
}

// RootCategories returns categories with no parent.
func (s *Service) RootCategories(ctx context.Context) ([]*entity.Category, error) {
	roots, err := s.Repo.ListRoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list root categories: %w", err)
	}
	return roots, nil
}

// SubCategories returns the direct children of a category.
// Returns ErrCategoryNotFound if the parent does not exist.
func (s *Service) SubCategories(ctx context.Context, parentID int64) ([]*entity.Category, error) {
	if parentID <= 0 {
		return nil, ErrInvalidCategoryID
	}

	parent, err := s.Repo.Get(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if parent == nil {
		return nil, ErrCategoryNotFound
	}

	children, err := s.Repo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return children, nil
}

func (s *Service) validateFields(c *entity.Category) error {
	if err := entity.ValidateCategoryName(c.Name); err != nil {
		return err
	}
	if c.Description != nil {
		if err := entity.ValidateCategoryDescription(*c.Description); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) buildViews(ctx context.Context, rows []repository.CategoryWithParent) ([]View, error) {
	articleCounts, err := s.Repo.ArticleCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles per category: %w", err)
	}
	childCounts, err := s.Repo.ChildCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count subcategories per category: %w", err)
	}

	views := make([]View, 0, len(rows))
	for _, row := range rows {
		articles := articleCounts[row.Category.ID]
		children := childCounts[row.Category.ID]
		views = append(views, View{
			Category:         row.Category,
			ParentName:       row.ParentName,
			NewsArticleCount: articles,
			SubCategoryCount: children,
			CanDelete:        articles == 0 && children == 0,
		})
	}
	return views, nil
}
