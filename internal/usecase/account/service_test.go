package account_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/domain/entity"
	acctUC "newsdesk/internal/usecase/account"
)

// in-memory AccountRepository stub
type stubRepo struct {
	data        map[int64]*entity.Account
	hasArticles map[int64]bool
	nextID      int64
	err         error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Account{}, hasArticles: map[int64]bool{}, nextID: 1}
}

func (s *stubRepo) add(a *entity.Account) *entity.Account {
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return a
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range s.data {
		out = append(out, a)
	}
	return out, s.err
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Account, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range s.data {
		if strings.EqualFold(a.Email, email) {
			return a, s.err
		}
	}
	return nil, s.err
}

func (s *stubRepo) Search(_ context.Context, term string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range s.data {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) ||
			strings.Contains(strings.ToLower(a.Email), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, s.err
}

func (s *stubRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, a := range s.data {
		if a.ID != excludeID && strings.EqualFold(a.Email, email) {
			return true, s.err
		}
	}
	return false, s.err
}

func (s *stubRepo) Create(_ context.Context, a *entity.Account) error {
	if s.err != nil {
		return s.err
	}
	s.add(a)
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Account) error {
	if s.err != nil {
		return s.err
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) HasArticles(_ context.Context, id int64) (bool, error) {
	return s.hasArticles[id], s.err
}

func TestService_Create_InvalidRole(t *testing.T) {
	svc := acctUC.Service{Repo: newStub()}

	for _, role := range []int{0, 3, -1, 99} {
		_, err := svc.Create(context.Background(), acctUC.CreateInput{
			Name: "Alice", Email: "alice@example.com", Role: role, Password: "secret123",
		})
		if !errors.Is(err, acctUC.ErrInvalidRole) {
			t.Fatalf("role %d: want ErrInvalidRole, got %v", role, err)
		}
	}
}

func TestService_Create_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newStub()
	repo.add(&entity.Account{Name: "Alice", Email: "alice@example.com", Role: entity.RoleStaff})
	svc := acctUC.Service{Repo: repo}

	_, err := svc.Create(context.Background(), acctUC.CreateInput{
		Name: "Other", Email: "ALICE@example.com", Role: 1, Password: "secret123",
	})
	if !errors.Is(err, acctUC.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestService_Create_HashesPassword(t *testing.T) {
	repo := newStub()
	svc := acctUC.Service{Repo: repo}

	a, err := svc.Create(context.Background(), acctUC.CreateInput{
		Name: "Alice", Email: "alice@example.com", Role: 1, Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.PasswordHash == "secret123" || a.PasswordHash == "" {
		t.Fatalf("password stored badly: %q", a.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if a.Role != entity.RoleStaff {
		t.Fatalf("role=%v", a.Role)
	}
}

func TestService_Create_WeakPasswordRejected(t *testing.T) {
	svc := acctUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), acctUC.CreateInput{
		Name: "Alice", Email: "alice@example.com", Role: 1, Password: "short",
	})
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	repo := newStub()
	a := repo.add(&entity.Account{
		Name: "Alice", Email: "alice@example.com", Role: entity.RoleStaff,
		PasswordHash: "$2a$10$existinghash",
	})
	svc := acctUC.Service{Repo: repo}

	got, err := svc.Update(context.Background(), acctUC.UpdateInput{
		ID: a.ID, Name: "Alice Smith", Email: "alice@example.com", Role: 2,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.PasswordHash != "$2a$10$existinghash" {
		t.Fatalf("hash changed: %q", got.PasswordHash)
	}
	if got.Role != entity.RoleLecturer || got.Name != "Alice Smith" {
		t.Fatalf("updated: %+v", got)
	}
}

func TestService_Update_NewPasswordRehashed(t *testing.T) {
	repo := newStub()
	a := repo.add(&entity.Account{
		Name: "Alice", Email: "alice@example.com", Role: entity.RoleStaff,
		PasswordHash: "$2a$10$existinghash",
	})
	svc := acctUC.Service{Repo: repo}

	got, err := svc.Update(context.Background(), acctUC.UpdateInput{
		ID: a.ID, Name: "Alice", Email: "alice@example.com", Role: 1, Password: "newsecret1",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("newsecret1")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestService_Update_DuplicateEmailExcludesSelf(t *testing.T) {
	repo := newStub()
	a := repo.add(&entity.Account{Name: "Alice", Email: "alice@example.com", Role: entity.RoleStaff})
	repo.add(&entity.Account{Name: "Bob", Email: "bob@example.com", Role: entity.RoleStaff})
	svc := acctUC.Service{Repo: repo}

	// Keeping one's own email is fine.
	if _, err := svc.Update(context.Background(), acctUC.UpdateInput{
		ID: a.ID, Name: "Alice", Email: "alice@example.com", Role: 1,
	}); err != nil {
		t.Fatalf("self-email update err=%v", err)
	}

	_, err := svc.Update(context.Background(), acctUC.UpdateInput{
		ID: a.ID, Name: "Alice", Email: "bob@example.com", Role: 1,
	})
	if !errors.Is(err, acctUC.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestService_Delete_Guards(t *testing.T) {
	repo := newStub()
	author := repo.add(&entity.Account{Name: "Author", Email: "a@example.com", Role: entity.RoleStaff})
	idle := repo.add(&entity.Account{Name: "Idle", Email: "i@example.com", Role: entity.RoleLecturer})
	repo.hasArticles[author.ID] = true
	svc := acctUC.Service{Repo: repo}

	if err := svc.Delete(context.Background(), author.ID); !errors.Is(err, acctUC.ErrHasArticles) {
		t.Fatalf("want ErrHasArticles, got %v", err)
	}
	if err := svc.Delete(context.Background(), idle.ID); err != nil {
		t.Fatalf("idle delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, acctUC.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}
