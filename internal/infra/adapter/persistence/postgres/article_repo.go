package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type ArticleRepo struct {
	db DB
}

func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// Every listing joins the category and the creator; tags are fetched in a
// second batched query keyed by article id to avoid per-row lookups.
const articleSelect = `
SELECT a.news_article_id, a.news_title, a.headline, a.news_content, a.news_source,
       a.category_id, a.news_status, a.created_by_id, a.updated_by_id,
       a.created_date, a.modified_date,
       c.category_name, COALESCE(c.category_description, ''),
       COALESCE(s.account_name, ''), COALESCE(s.account_email, '')
FROM news_articles a
INNER JOIN categories c ON a.category_id = c.category_id
LEFT JOIN system_accounts s ON a.created_by_id = s.account_id`

func (repo *ArticleRepo) ListActive(ctx context.Context) ([]repository.ArticleWithRelations, error) {
	query := articleSelect + `
WHERE a.news_status = TRUE AND c.is_active = TRUE
ORDER BY a.created_date DESC`
	return repo.queryArticles(ctx, "ListActive", query)
}

func (repo *ArticleRepo) List(ctx context.Context) ([]repository.ArticleWithRelations, error) {
	query := articleSelect + `
ORDER BY a.created_date DESC`
	return repo.queryArticles(ctx, "List", query)
}

func (repo *ArticleRepo) ListByCreator(ctx context.Context, accountID int64) ([]repository.ArticleWithRelations, error) {
	query := articleSelect + `
WHERE a.created_by_id = $1
ORDER BY a.created_date DESC`
	return repo.queryArticles(ctx, "ListByCreator", query, accountID)
}

func (repo *ArticleRepo) Search(ctx context.Context, term string) ([]repository.ArticleWithRelations, error) {
	query := articleSelect + `
WHERE a.news_title ILIKE $1
   OR a.news_content ILIKE $1
   OR a.headline ILIKE $1
   OR EXISTS (
        SELECT 1 FROM news_tags nt
        INNER JOIN tags t ON nt.tag_id = t.tag_id
        WHERE nt.news_article_id = a.news_article_id AND t.tag_name ILIKE $1
   )
ORDER BY a.created_date DESC`
	return repo.queryArticles(ctx, "Search", query, likePattern(term))
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*repository.ArticleWithRelations, error) {
	query := articleSelect + `
WHERE a.news_article_id = $1
LIMIT 1`
	item, err := scanArticleWithRelations(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	tags, err := repo.tagsByArticleIDs(ctx, []int64{item.Article.ID})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	item.Tags = tags[item.Article.ID]
	return item, nil
}

func scanArticleWithRelations(s interface{ Scan(...any) error }) (*repository.ArticleWithRelations, error) {
	var a entity.Article
	var item repository.ArticleWithRelations
	if err := s.Scan(&a.ID, &a.Title, &a.Headline, &a.Content, &a.Source,
		&a.CategoryID, &a.Status, &a.CreatedByID, &a.UpdatedByID,
		&a.CreatedDate, &a.ModifiedDate,
		&item.CategoryName, &item.CategoryDesc,
		&item.CreatedByName, &item.CreatedByEmail); err != nil {
		return nil, err
	}
	item.Article = &a
	return &item, nil
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, op, query string, args ...any) ([]repository.ArticleWithRelations, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithRelations, 0, 32)
	ids := make([]int64, 0, 32)
	for rows.Next() {
		item, err := scanArticleWithRelations(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		result = append(result, *item)
		ids = append(ids, item.Article.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(ids) == 0 {
		return result, nil
	}

	tagsByArticle, err := repo.tagsByArticleIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range result {
		result[i].Tags = tagsByArticle[result[i].Article.ID]
	}
	return result, nil
}

// tagsByArticleIDs loads the tags of many articles in one round trip,
// keeping the listings free of N+1 queries.
func (repo *ArticleRepo) tagsByArticleIDs(ctx context.Context, ids []int64) (map[int64][]entity.Tag, error) {
	const query = `
SELECT nt.news_article_id, t.tag_id, t.tag_name, t.note
FROM news_tags nt
INNER JOIN tags t ON nt.tag_id = t.tag_id
WHERE nt.news_article_id = ANY($1)
ORDER BY t.tag_name`
	rows, err := repo.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("tagsByArticleIDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[int64][]entity.Tag, len(ids))
	for rows.Next() {
		var articleID int64
		var t entity.Tag
		if err := rows.Scan(&articleID, &t.ID, &t.Name, &t.Note); err != nil {
			return nil, fmt.Errorf("tagsByArticleIDs: Scan: %w", err)
		}
		result[articleID] = append(result[articleID], t)
	}
	return result, rows.Err()
}

// Create inserts the article row and its tag associations in one
// transaction: a failure after the insert rolls everything back instead of
// leaving a tagless article behind.
func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article, tagIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insert = `
INSERT INTO news_articles (news_title, headline, news_content, news_source,
                           category_id, news_status, created_by_id, updated_by_id, created_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING news_article_id`
	if err := tx.QueryRowContext(ctx, insert,
		a.Title, a.Headline, a.Content, a.Source,
		a.CategoryID, a.Status, a.CreatedByID, a.UpdatedByID, a.CreatedDate).Scan(&a.ID); err != nil {
		return fmt.Errorf("Create: insert: %w", err)
	}

	if err := insertArticleTags(ctx, tx, a.ID, tagIDs); err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Create: commit: %w", err)
	}
	return nil
}

// Update overwrites the row and resynchronizes the tag set in one
// transaction (delete-all-then-insert-all).
func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article, tagIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Update: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const update = `
UPDATE news_articles
SET news_title = $2, headline = $3, news_content = $4, news_source = $5,
    category_id = $6, news_status = $7, updated_by_id = $8, modified_date = $9
WHERE news_article_id = $1`
	if _, err := tx.ExecContext(ctx, update,
		a.ID, a.Title, a.Headline, a.Content, a.Source,
		a.CategoryID, a.Status, a.UpdatedByID, a.ModifiedDate); err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM news_tags WHERE news_article_id = $1`, a.ID); err != nil {
		return fmt.Errorf("Update: clear tags: %w", err)
	}
	if err := insertArticleTags(ctx, tx, a.ID, tagIDs); err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Update: commit: %w", err)
	}
	return nil
}

func insertArticleTags(ctx context.Context, tx *sql.Tx, articleID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO news_tags (news_article_id, tag_id) VALUES ($1, $2)`,
			articleID, tagID); err != nil {
			return fmt.Errorf("attach tag %d: %w", tagID, err)
		}
	}
	return nil
}

// Delete removes the article; news_tags rows cascade at the schema level.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	if _, err := repo.db.ExecContext(ctx,
		`DELETE FROM news_articles WHERE news_article_id = $1`, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) SetStatus(ctx context.Context, id int64, status bool) error {
	if _, err := repo.db.ExecContext(ctx,
		`UPDATE news_articles SET news_status = $2 WHERE news_article_id = $1`, id, status); err != nil {
		return fmt.Errorf("SetStatus: %w", err)
	}
	return nil
}
