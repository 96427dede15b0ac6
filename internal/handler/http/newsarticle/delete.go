package newsarticle

import (
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// DeleteHandler deletes an article. Only the creator may delete.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.FromContext(r.Context())
	if caller == nil {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/newsarticles/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := h.Svc.Delete(r.Context(), id, caller.AccountID); err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "article deleted", nil)
}
