package db

import "database/sql"

// MigrateUp applies the schema. Every statement is idempotent so the
// function can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    category_id          SERIAL PRIMARY KEY,
    category_name        TEXT NOT NULL,
    category_description TEXT,
    parent_category_id   INTEGER REFERENCES categories(category_id),
    is_active            BOOLEAN NOT NULL DEFAULT TRUE
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS system_accounts (
    account_id    SERIAL PRIMARY KEY,
    account_name  TEXT NOT NULL,
    account_email TEXT NOT NULL,
    account_role  SMALLINT NOT NULL,
    password_hash TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tags (
    tag_id   SERIAL PRIMARY KEY,
    tag_name TEXT NOT NULL,
    note     TEXT
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_articles (
    news_article_id SERIAL PRIMARY KEY,
    news_title      TEXT NOT NULL,
    headline        TEXT,
    news_content    TEXT NOT NULL,
    news_source     TEXT,
    category_id     INTEGER NOT NULL REFERENCES categories(category_id),
    news_status     BOOLEAN NOT NULL DEFAULT TRUE,
    created_by_id   INTEGER NOT NULL REFERENCES system_accounts(account_id),
    updated_by_id   INTEGER NOT NULL,
    created_date    TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_date   TIMESTAMPTZ
)`); err != nil {
		return err
	}

	// Composite key; associations die with the article, tags are kept.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_tags (
    news_article_id INTEGER NOT NULL REFERENCES news_articles(news_article_id) ON DELETE CASCADE,
    tag_id          INTEGER NOT NULL REFERENCES tags(tag_id) ON DELETE RESTRICT,
    PRIMARY KEY (news_article_id, tag_id)
)`); err != nil {
		return err
	}

	indexes := []string{
		// Case-insensitive uniqueness for names and emails. The tag index
		// also makes get-or-create race-safe: concurrent inserts of the
		// same name collide here instead of duplicating the row.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_categories_name_lower ON categories(lower(category_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_accounts_email_lower ON system_accounts(lower(account_email))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_tags_name_lower ON tags(lower(tag_name))`,
		// ORDER BY created_date DESC is used by every article listing.
		`CREATE INDEX IF NOT EXISTS idx_news_articles_created_date ON news_articles(created_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_news_articles_category_id ON news_articles(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_news_articles_created_by_id ON news_articles(created_by_id)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_parent_id ON categories(parent_category_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE searches; ignore the error when the
	// extension is unavailable or the user lacks privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_news_articles_title_gin ON news_articles USING gin(news_title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_news_articles_content_gin ON news_articles USING gin(news_content gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_name_gin ON categories USING gin(category_name gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = db.Exec(idx)
	}

	return nil
}
