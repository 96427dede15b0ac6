// Package account provides the admin-only HTTP handlers for managing
// staff and lecturer accounts.
package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	accUC "newsdesk/internal/usecase/account"
)

// DTO is the JSON projection of an account. The password hash never
// leaves the server.
type DTO struct {
	AccountID int64  `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	RoleID    int    `json:"roleId"`
	RoleName  string `json:"roleName"`
}

type writeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   int    `json:"roleId"`
	Password string `json:"password"`
}

func toDTO(a *entity.Account) DTO {
	return DTO{
		AccountID: a.ID,
		Name:      a.Name,
		Email:     a.Email,
		RoleID:    int(a.Role),
		RoleName:  a.Role.Name(),
	}
}

func toDTOs(accounts []*entity.Account) []DTO {
	out := make([]DTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toDTO(a))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		respond.Validation(w, ve)
		return
	}
	switch {
	case errors.Is(err, accUC.ErrAccountNotFound):
		respond.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, accUC.ErrInvalidAccountID),
		errors.Is(err, accUC.ErrDuplicateEmail),
		errors.Is(err, accUC.ErrInvalidRole),
		errors.Is(err, accUC.ErrHasArticles):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.InternalError(w, err)
	}
}

// ListHandler returns every account.
type ListHandler struct{ Svc *accUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Svc.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "accounts retrieved", toDTOs(accounts))
}

// GetHandler returns one account by id.
type GetHandler struct{ Svc *accUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/accounts/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid account id")
		return
	}

	account, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "account retrieved", toDTO(account))
}

// SearchHandler matches the term against account names and emails. A blank
// term falls back to the full listing.
type SearchHandler struct{ Svc *accUC.Service }

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Svc.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "accounts retrieved", toDTOs(accounts))
}

// CreateHandler creates a Staff or Lecturer account.
type CreateHandler struct{ Svc *accUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Svc.Create(r.Context(), accUC.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.RoleID,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusCreated, "account created", toDTO(created))
}

// UpdateHandler overwrites an account. An empty password keeps the stored
// hash.
type UpdateHandler struct{ Svc *accUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/accounts/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Svc.Update(r.Context(), accUC.UpdateInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.RoleID,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "account updated", toDTO(updated))
}

// DeleteHandler deletes an account. The use case refuses while articles
// still reference it.
type DeleteHandler struct{ Svc *accUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/accounts/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "account deleted", nil)
}

// Register mounts the account routes, all Admin only.
func Register(mux *http.ServeMux, svc *accUC.Service, verifier auth.Verifier) {
	admin := func(h http.Handler) http.Handler {
		return auth.Require(verifier)(auth.RequireRoles(entity.RoleAdmin)(h))
	}

	mux.Handle("GET    /accounts", admin(ListHandler{svc}))
	mux.Handle("GET    /accounts/search", admin(SearchHandler{svc}))
	mux.Handle("GET    /accounts/", admin(GetHandler{svc}))

	mux.Handle("POST   /accounts", admin(CreateHandler{svc}))
	mux.Handle("PUT    /accounts/", admin(UpdateHandler{svc}))
	mux.Handle("DELETE /accounts/", admin(DeleteHandler{svc}))
}
