package category

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	catUC "newsdesk/internal/usecase/category"
)

// Register mounts the category routes. Reads are open to Staff and Admin,
// writes to Staff only; the active listing and the tree stay anonymous.
func Register(mux *http.ServeMux, svc *catUC.Service, verifier auth.Verifier) {
	readers := func(h http.Handler) http.Handler {
		return auth.Require(verifier)(auth.RequireRoles(entity.RoleStaff, entity.RoleAdmin)(h))
	}
	staff := func(h http.Handler) http.Handler {
		return auth.Require(verifier)(auth.RequireRoles(entity.RoleStaff)(h))
	}

	mux.Handle("GET    /category", readers(ListHandler{svc}))
	mux.Handle("GET    /category/active", ListActiveHandler{svc})
	mux.Handle("GET    /category/tree", TreeHandler{svc})
	mux.Handle("GET    /category/search", readers(SearchHandler{svc}))
	mux.Handle("POST   /category/search/paged", readers(SearchPagedHandler{svc}))
	mux.Handle("GET    /category/", readers(GetHandler{svc}))

	mux.Handle("POST   /category", staff(CreateHandler{svc}))
	mux.Handle("PUT    /category/", staff(UpdateHandler{svc}))
	mux.Handle("DELETE /category/", staff(DeleteHandler{svc}))
	mux.Handle("PATCH  /category/", staff(ToggleStatusHandler{svc}))
}
