package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	handlerhttp "newsdesk/internal/handler/http"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/service/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expiresAt"`
	Account   accountInfo `json:"account"`
}

type accountInfo struct {
	AccountID int64  `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginHandler issues a JWT for valid credentials.
type LoginHandler struct {
	Svc *auth.Service
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Fail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			handlerhttp.RecordLoginAttempt("failure")
			respond.Fail(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		handlerhttp.RecordLoginAttempt("error")
		respond.InternalError(w, err)
		return
	}

	handlerhttp.RecordLoginAttempt("success")
	respond.OK(w, http.StatusOK, "login successful", loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
		Account: accountInfo{
			AccountID: result.Identity.AccountID,
			Name:      result.Identity.Name,
			Email:     result.Identity.Email,
			Role:      result.Identity.Role.Name(),
		},
	})
}

// LogoutHandler acknowledges a logout. Tokens are stateless, so the
// client discards the token; nothing is invalidated server side.
type LogoutHandler struct{}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.OK(w, http.StatusOK, "logout successful", nil)
}

// Register mounts the auth endpoints on mux. limit wraps the login route
// only; pass nil to disable rate limiting (tests).
func Register(mux *http.ServeMux, svc *auth.Service, limit func(http.Handler) http.Handler) {
	var login http.Handler = &LoginHandler{Svc: svc}
	if limit != nil {
		login = limit(login)
	}
	mux.Handle("POST   /auth/login", login)
	mux.Handle("POST   /auth/logout", &LogoutHandler{})
}
