package account

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating an account.
type CreateInput struct {
	Name     string
	Email    string
	Role     int
	Password string
}

// UpdateInput represents the input parameters for updating an account.
// An empty Password leaves the stored hash untouched.
type UpdateInput struct {
	ID       int64
	Name     string
	Email    string
	Role     int
	Password string
}

// Service provides account management use cases.
// It handles validation, uniqueness, and password hashing, and delegates
// persistence to the repository.
type Service struct {
	Repo repository.AccountRepository
}

// ListAll retrieves all accounts ordered by name.
func (s *Service) ListAll(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Get retrieves a single account by its ID.
// Returns ErrAccountNotFound if the account does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Account, error) {
	if id <= 0 {
		return nil, ErrInvalidAccountID
	}

	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Search finds accounts whose name or email contains the keyword.
// A blank keyword returns the full list.
func (s *Service) Search(ctx context.Context, term string) ([]*entity.Account, error) {
	term = entity.NormalizeName(term)
	if term == "" {
		return s.ListAll(ctx)
	}
	accounts, err := s.Repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search accounts: %w", err)
	}
	return accounts, nil
}

// Create creates a new account with a bcrypt-hashed password.
// Returns a ValidationError for invalid fields, ErrInvalidRole for roles
// outside Staff/Lecturer, and ErrDuplicateEmail on email collision.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Account, error) {
	role, err := parseAssignableRole(in.Role)
	if err != nil {
		return nil, err
	}

	a := &entity.Account{
		Name:  entity.NormalizeName(in.Name),
		Email: entity.NormalizeName(in.Email),
		Role:  role,
	}
	if err := validateFields(a); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	exists, err := s.Repo.EmailExists(ctx, a.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("check account email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a.PasswordHash = string(hash)

	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

// Update overwrites an account's profile. The password is rehashed only
// when a new one is supplied.
// Returns ErrAccountNotFound if the account does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Account, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidAccountID
	}

	existing, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if existing == nil {
		return nil, ErrAccountNotFound
	}

	role, err := parseAssignableRole(in.Role)
	if err != nil {
		return nil, err
	}

	a := &entity.Account{
		ID:           in.ID,
		Name:         entity.NormalizeName(in.Name),
		Email:        entity.NormalizeName(in.Email),
		Role:         role,
		PasswordHash: existing.PasswordHash,
	}
	if err := validateFields(a); err != nil {
		return nil, err
	}

	exists, err := s.Repo.EmailExists(ctx, a.Email, a.ID)
	if err != nil {
		return nil, fmt.Errorf("check account email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	if in.Password != "" {
		if err := entity.ValidatePassword(in.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		a.PasswordHash = string(hash)
	}

	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return a, nil
}

// Delete removes an account.
// Returns ErrAccountNotFound if the account does not exist and ErrHasArticles
// when the account still owns news articles.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAccountID
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if existing == nil {
		return ErrAccountNotFound
	}

	owns, err := s.Repo.HasArticles(ctx, id)
	if err != nil {
		return fmt.Errorf("check account articles: %w", err)
	}
	if owns {
		return ErrHasArticles
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// parseAssignableRole restricts stored roles to Staff and Lecturer. The
// admin role never reaches the accounts table.
func parseAssignableRole(v int) (entity.Role, error) {
	role, err := entity.ParseRole(v)
	if err != nil || !role.Assignable() {
		return 0, ErrInvalidRole
	}
	return role, nil
}

func validateFields(a *entity.Account) error {
	if a.Name == "" {
		return &entity.ValidationError{Field: "accountName", Message: "name is required"}
	}
	return entity.ValidateEmail(a.Email)
}
