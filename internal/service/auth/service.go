// Package auth implements the authentication gateway: credential
// verification and JWT issuance. Stored accounts authenticate against
// bcrypt hashes; the administrator is configured out of band and never
// touches the account store.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/domain/entity"
)

// TokenTTL is the lifetime of an issued token.
const TokenTTL = time.Hour

var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// Both cases collapse into one error so callers cannot probe for
	// registered addresses.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken indicates a token that failed verification: bad
	// signature, wrong algorithm, expired, or malformed claims.
	ErrInvalidToken = errors.New("invalid token")
)

// AccountFinder is the slice of the account repository the gateway needs.
type AccountFinder interface {
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
}

// AdminCredentials is the out-of-band administrator account. It exists only
// in configuration; the admin authenticates with AccountID 0 and RoleAdmin.
type AdminCredentials struct {
	Email    string
	Password string
	Name     string
}

// Service verifies credentials and issues signed tokens.
type Service struct {
	Accounts AccountFinder
	Admin    AdminCredentials
	Secret   []byte
}

// LoginResult carries the issued token and the identity it encodes.
type LoginResult struct {
	Token     string
	Identity  entity.Identity
	ExpiresAt time.Time
}

// Login verifies the credentials and issues a token. The admin comparison
// is constant-time; stored accounts verify against their bcrypt hash.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	if strings.EqualFold(email, s.Admin.Email) {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.Admin.Password)) != 1 {
			return nil, ErrInvalidCredentials
		}
		return s.issue(entity.Identity{
			AccountID: 0,
			Email:     s.Admin.Email,
			Name:      s.Admin.Name,
			Role:      entity.RoleAdmin,
		})
	}

	account, err := s.Accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(entity.Identity{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
	})
}

func (s *Service) issue(identity entity.Identity) (*LoginResult, error) {
	now := time.Now()
	expiresAt := now.Add(TokenTTL)

	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(identity.AccountID, 10),
		"email":   identity.Email,
		"name":    identity.Name,
		"role":    identity.Role.Name(),
		"role_id": int(identity.Role),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{Token: token, Identity: identity, ExpiresAt: expiresAt}, nil
}

// Verify parses and validates a token string and reconstructs the identity
// it encodes. Only HS256 is accepted.
func (s *Service) Verify(tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	accountID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	roleFloat, ok := claims["role_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, err := entity.ParseRole(int(roleFloat))
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return &entity.Identity{
		AccountID: accountID,
		Email:     email,
		Name:      name,
		Role:      role,
	}, nil
}
