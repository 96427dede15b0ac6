package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CategoryRepo struct {
	db DB
}

func NewCategoryRepo(db DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

const categoryColumns = `category_id, category_name, category_description, parent_category_id, is_active`

func scanCategory(s interface{ Scan(...any) error }) (*entity.Category, error) {
	var c entity.Category
	if err := s.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.IsActive); err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]repository.CategoryWithParent, error) {
	const query = `
SELECT c.category_id, c.category_name, c.category_description, c.parent_category_id, c.is_active,
       COALESCE(p.category_name, '') AS parent_name
FROM categories c
LEFT JOIN categories p ON c.parent_category_id = p.category_id
ORDER BY c.category_name`
	return repo.queryWithParent(ctx, "List", query)
}

func (repo *CategoryRepo) Search(ctx context.Context, term string) ([]repository.CategoryWithParent, error) {
	const query = `
SELECT c.category_id, c.category_name, c.category_description, c.parent_category_id, c.is_active,
       COALESCE(p.category_name, '') AS parent_name
FROM categories c
LEFT JOIN categories p ON c.parent_category_id = p.category_id
WHERE c.category_name ILIKE $1 OR c.category_description ILIKE $1
ORDER BY c.category_name`
	return repo.queryWithParent(ctx, "Search", query, likePattern(term))
}

func (repo *CategoryRepo) SearchPaged(ctx context.Context, term string, offset, limit int) ([]repository.CategoryWithParent, error) {
	const query = `
SELECT c.category_id, c.category_name, c.category_description, c.parent_category_id, c.is_active,
       COALESCE(p.category_name, '') AS parent_name
FROM categories c
LEFT JOIN categories p ON c.parent_category_id = p.category_id
WHERE c.category_name ILIKE $1 OR c.category_description ILIKE $1
ORDER BY c.category_name
LIMIT $2 OFFSET $3`
	return repo.queryWithParent(ctx, "SearchPaged", query, likePattern(term), limit, offset)
}

func (repo *CategoryRepo) CountSearch(ctx context.Context, term string) (int64, error) {
	const query = `
SELECT COUNT(*) FROM categories
WHERE category_name ILIKE $1 OR category_description ILIKE $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, likePattern(term)).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountSearch: %w", err)
	}
	return count, nil
}

func (repo *CategoryRepo) queryWithParent(ctx context.Context, op, query string, args ...any) ([]repository.CategoryWithParent, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.CategoryWithParent, 0, 16)
	for rows.Next() {
		var c entity.Category
		var parentName string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.IsActive, &parentName); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		result = append(result, repository.CategoryWithParent{Category: &c, ParentName: parentName})
	}
	return result, rows.Err()
}

func (repo *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	query := `
SELECT ` + categoryColumns + `
FROM categories
WHERE is_active = TRUE
ORDER BY category_name`
	return repo.queryCategories(ctx, "ListActive", query)
}

func (repo *CategoryRepo) ListRoots(ctx context.Context) ([]*entity.Category, error) {
	query := `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_category_id IS NULL
ORDER BY category_name`
	return repo.queryCategories(ctx, "ListRoots", query)
}

func (repo *CategoryRepo) ListChildren(ctx context.Context, parentID int64) ([]*entity.Category, error) {
	query := `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_category_id = $1
ORDER BY category_name`
	return repo.queryCategories(ctx, "ListChildren", query, parentID)
}

func (repo *CategoryRepo) queryCategories(ctx context.Context, op, query string, args ...any) ([]*entity.Category, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
SELECT ` + categoryColumns + `
FROM categories
WHERE category_id = $1
LIMIT 1`
	c, err := scanCategory(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CategoryRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM categories
    WHERE lower(category_name) = lower($1) AND category_id <> $2
)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("NameExists: %w", err)
	}
	return exists, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	const query = `
INSERT INTO categories (category_name, category_description, parent_category_id, is_active)
VALUES ($1, $2, $3, $4)
RETURNING category_id`
	if err := repo.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.ParentID, c.IsActive).Scan(&c.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	const query = `
UPDATE categories
SET category_name = $2, category_description = $3, parent_category_id = $4, is_active = $5
WHERE category_id = $1`
	if _, err := repo.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, c.ParentID, c.IsActive); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) SetStatus(ctx context.Context, id int64, active bool) error {
	if _, err := repo.db.ExecContext(ctx,
		`UPDATE categories SET is_active = $2 WHERE category_id = $1`, id, active); err != nil {
		return fmt.Errorf("SetStatus: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) ArticleCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM news_articles WHERE category_id = $1`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("ArticleCount: %w", err)
	}
	return count, nil
}

func (repo *CategoryRepo) ArticleCounts(ctx context.Context) (map[int64]int64, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT category_id, COUNT(*) FROM news_articles GROUP BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("ArticleCounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[int64]int64, 16)
	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("ArticleCounts: Scan: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

func (repo *CategoryRepo) ChildCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE parent_category_id = $1`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("ChildCount: %w", err)
	}
	return count, nil
}

func (repo *CategoryRepo) ChildCounts(ctx context.Context) (map[int64]int64, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT parent_category_id, COUNT(*) FROM categories
WHERE parent_category_id IS NOT NULL GROUP BY parent_category_id`)
	if err != nil {
		return nil, fmt.Errorf("ChildCounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[int64]int64, 16)
	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("ChildCounts: Scan: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}
