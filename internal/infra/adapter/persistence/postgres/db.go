// Package postgres implements the repository contracts over PostgreSQL.
// Queries are raw SQL with positional placeholders; no ORM.
package postgres

import (
	"context"
	"database/sql"

	"newsdesk/internal/pkg/search"
)

// DB is the subset of database operations the repositories need. It is
// satisfied by *sql.DB and by circuitbreaker.DBCircuitBreaker, so the
// breaker can be slotted in at wiring time without the repositories
// knowing.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// likePattern builds the ILIKE argument for a substring search, escaping
// LIKE metacharacters so the term matches literally.
func likePattern(term string) string {
	return "%" + search.EscapeILIKE(term) + "%"
}
