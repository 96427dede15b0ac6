package newsarticle

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	artUC "newsdesk/internal/usecase/article"
)

// Register mounts the article routes. The public feed is anonymous, the
// detail view carries an optional identity, listings are open to Staff and
// Admin, and every write goes through the Staff role (ownership is then
// enforced per article in the use case).
func Register(mux *http.ServeMux, svc *artUC.Service, verifier auth.Verifier, published PublishRecorder) {
	readers := func(h http.Handler) http.Handler {
		return auth.Require(verifier)(auth.RequireRoles(entity.RoleStaff, entity.RoleAdmin)(h))
	}
	staff := func(h http.Handler) http.Handler {
		return auth.Require(verifier)(auth.RequireRoles(entity.RoleStaff)(h))
	}

	mux.Handle("GET    /newsarticles/active", ListActiveHandler{svc})
	mux.Handle("GET    /newsarticles", readers(ListHandler{svc}))
	mux.Handle("GET    /newsarticles/search", readers(SearchHandler{svc}))
	mux.Handle("GET    /newsarticles/my-articles", readers(MyArticlesHandler{svc}))
	mux.Handle("GET    /newsarticles/", auth.Optional(verifier)(GetHandler{svc}))

	mux.Handle("POST   /newsarticles", staff(CreateHandler{Svc: svc, Published: published}))
	mux.Handle("PUT    /newsarticles/", staff(UpdateHandler{svc}))
	mux.Handle("DELETE /newsarticles/", staff(DeleteHandler{svc}))
	mux.Handle("PATCH  /newsarticles/", staff(ToggleStatusHandler{Svc: svc, Published: published}))
}
