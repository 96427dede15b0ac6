package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/domain/entity"
	handlerauth "newsdesk/internal/handler/http/auth"
	"newsdesk/internal/service/auth"
)

type stubFinder struct {
	account *entity.Account
}

func (s stubFinder) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if s.account != nil && strings.EqualFold(s.account.Email, email) {
		return s.account, nil
	}
	return nil, nil
}

func newLoginService(t *testing.T) *auth.Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("staffpass1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &auth.Service{
		Accounts: stubFinder{account: &entity.Account{
			ID:           7,
			Name:         "Staff Member",
			Email:        "staff@example.com",
			Role:         entity.RoleStaff,
			PasswordHash: string(hash),
		}},
		Admin:  auth.AdminCredentials{Email: "admin@example.com", Password: "adminpass1", Name: "Administrator"},
		Secret: []byte("0123456789abcdef0123456789abcdef"),
	}
}

func postLogin(t *testing.T, svc *auth.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := &handlerauth.LoginHandler{Svc: svc}
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandler_Success(t *testing.T) {
	rec := postLogin(t, newLoginService(t), `{"email":"staff@example.com","password":"staffpass1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token     string `json:"token"`
			ExpiresAt string `json:"expiresAt"`
			Account   struct {
				AccountID int64  `json:"accountId"`
				Role      string `json:"role"`
			} `json:"account"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Error("Success = false, want true")
	}
	if body.Data.Token == "" {
		t.Error("empty token")
	}
	if body.Data.Account.AccountID != 7 {
		t.Errorf("AccountID = %d, want 7", body.Data.Account.AccountID)
	}
	if body.Data.Account.Role != "Staff" {
		t.Errorf("Role = %q, want Staff", body.Data.Account.Role)
	}
}

func TestLoginHandler_AdminLogin(t *testing.T) {
	rec := postLogin(t, newLoginService(t), `{"email":"admin@example.com","password":"adminpass1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Data struct {
			Account struct {
				AccountID int64  `json:"accountId"`
				Role      string `json:"role"`
			} `json:"account"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Account.AccountID != 0 {
		t.Errorf("AccountID = %d, want 0", body.Data.Account.AccountID)
	}
	if body.Data.Account.Role != "Admin" {
		t.Errorf("Role = %q, want Admin", body.Data.Account.Role)
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	rec := postLogin(t, newLoginService(t), `{"email":"staff@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginHandler_MalformedBody(t *testing.T) {
	rec := postLogin(t, newLoginService(t), `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	rec := postLogin(t, newLoginService(t), `{"email":"staff@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	h := &handlerauth.LogoutHandler{}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/logout", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
