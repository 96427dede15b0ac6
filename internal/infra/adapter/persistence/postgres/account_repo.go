package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type AccountRepo struct {
	db DB
}

func NewAccountRepo(db DB) repository.AccountRepository {
	return &AccountRepo{db: db}
}

const accountColumns = `account_id, account_name, account_email, account_role, password_hash`

func scanAccount(s interface{ Scan(...any) error }) (*entity.Account, error) {
	var a entity.Account
	var role int
	if err := s.Scan(&a.ID, &a.Name, &a.Email, &role, &a.PasswordHash); err != nil {
		return nil, err
	}
	a.Role = entity.Role(role)
	return &a, nil
}

func (repo *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	query := `
SELECT ` + accountColumns + `
FROM system_accounts
ORDER BY account_name`
	return repo.queryAccounts(ctx, "List", query)
}

func (repo *AccountRepo) Search(ctx context.Context, term string) ([]*entity.Account, error) {
	query := `
SELECT ` + accountColumns + `
FROM system_accounts
WHERE account_name ILIKE $1 OR account_email ILIKE $1
ORDER BY account_name`
	return repo.queryAccounts(ctx, "Search", query, likePattern(term))
}

func (repo *AccountRepo) queryAccounts(ctx context.Context, op, query string, args ...any) ([]*entity.Account, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*entity.Account, 0, 16)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (repo *AccountRepo) Get(ctx context.Context, id int64) (*entity.Account, error) {
	query := `
SELECT ` + accountColumns + `
FROM system_accounts
WHERE account_id = $1
LIMIT 1`
	a, err := scanAccount(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `
SELECT ` + accountColumns + `
FROM system_accounts
WHERE lower(account_email) = lower($1)
LIMIT 1`
	a, err := scanAccount(repo.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return a, nil
}

func (repo *AccountRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM system_accounts
    WHERE lower(account_email) = lower($1) AND account_id <> $2
)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("EmailExists: %w", err)
	}
	return exists, nil
}

func (repo *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	const query = `
INSERT INTO system_accounts (account_name, account_email, account_role, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING account_id`
	if err := repo.db.QueryRowContext(ctx, query,
		a.Name, a.Email, int(a.Role), a.PasswordHash).Scan(&a.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	const query = `
UPDATE system_accounts
SET account_name = $2, account_email = $3, account_role = $4, password_hash = $5
WHERE account_id = $1`
	if _, err := repo.db.ExecContext(ctx, query,
		a.ID, a.Name, a.Email, int(a.Role), a.PasswordHash); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *AccountRepo) Delete(ctx context.Context, id int64) error {
	if _, err := repo.db.ExecContext(ctx,
		`DELETE FROM system_accounts WHERE account_id = $1`, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *AccountRepo) HasArticles(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM news_articles WHERE created_by_id = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("HasArticles: %w", err)
	}
	return exists, nil
}
