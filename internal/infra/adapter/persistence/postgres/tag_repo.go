package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type TagRepo struct {
	db DB
}

func NewTagRepo(db DB) repository.TagRepository {
	return &TagRepo{db: db}
}

func (repo *TagRepo) List(ctx context.Context) ([]*entity.Tag, error) {
	const query = `
SELECT tag_id, tag_name, note
FROM tags
ORDER BY tag_name`
	return repo.queryTags(ctx, "List", query)
}

func (repo *TagRepo) SearchByName(ctx context.Context, term string) ([]*entity.Tag, error) {
	const query = `
SELECT tag_id, tag_name, note
FROM tags
WHERE tag_name ILIKE $1
ORDER BY tag_name`
	return repo.queryTags(ctx, "SearchByName", query, likePattern(term))
}

func (repo *TagRepo) queryTags(ctx context.Context, op, query string, args ...any) ([]*entity.Tag, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*entity.Tag, 0, 16)
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Note); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

// GetOrCreate resolves a tag name case-insensitively, creating the row when
// absent. The unique index on lower(tag_name) closes the check-then-act
// race: when a concurrent request wins the insert, ON CONFLICT DO NOTHING
// returns no row and the tag is re-fetched.
func (repo *TagRepo) GetOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	normalized := entity.NormalizeName(name)

	tag, err := repo.getByName(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		return tag, nil
	}

	const insert = `
INSERT INTO tags (tag_name)
VALUES ($1)
ON CONFLICT DO NOTHING
RETURNING tag_id, tag_name, note`
	var created entity.Tag
	err = repo.db.QueryRowContext(ctx, insert, normalized).
		Scan(&created.ID, &created.Name, &created.Note)
	if err == sql.ErrNoRows {
		// Lost the race; the winner's row is there now.
		tag, err = repo.getByName(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			return nil, fmt.Errorf("GetOrCreate: tag %q vanished after conflict", normalized)
		}
		return tag, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetOrCreate: %w", err)
	}
	return &created, nil
}

func (repo *TagRepo) getByName(ctx context.Context, name string) (*entity.Tag, error) {
	const query = `
SELECT tag_id, tag_name, note
FROM tags
WHERE lower(tag_name) = lower($1)
LIMIT 1`
	var t entity.Tag
	err := repo.db.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name, &t.Note)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getByName: %w", err)
	}
	return &t, nil
}

// SyncArticleTags replaces the article's association set in one
// transaction: delete everything, insert the new set.
func (repo *TagRepo) SyncArticleTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SyncArticleTags: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM news_tags WHERE news_article_id = $1`, articleID); err != nil {
		return fmt.Errorf("SyncArticleTags: delete: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO news_tags (news_article_id, tag_id) VALUES ($1, $2)`,
			articleID, tagID); err != nil {
			return fmt.Errorf("SyncArticleTags: insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("SyncArticleTags: commit: %w", err)
	}
	return nil
}
