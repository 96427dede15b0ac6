package newsarticle

import (
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// GetHandler serves one article with the caller's mutation rights. The
// route carries an optional identity: anonymous callers get no rights.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/newsarticles/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid article id")
		return
	}
	writeDetail(w, r, h.Svc, id, http.StatusOK, "article retrieved")
}

// writeDetail re-fetches the article and writes the hydrated detail view.
// Create and update respond with it too, so every write returns the same
// projection a subsequent read would.
func writeDetail(w http.ResponseWriter, r *http.Request, svc *artUC.Service, id int64, code int, message string) {
	detail, err := svc.Get(r.Context(), id, auth.FromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	out := DetailDTO{
		DTO:       toDTO(*detail.Item),
		CanEdit:   detail.CanEdit,
		CanDelete: detail.CanDelete,
	}
	respond.OK(w, code, message, out)
}
