package newsarticle

import (
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// ToggleStatusHandler flips an article's active flag. Only the creator may
// toggle.
type ToggleStatusHandler struct {
	Svc       *artUC.Service
	Published PublishRecorder
}

func (h ToggleStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.FromContext(r.Context())
	if caller == nil {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := pathutil.ExtractIDBetween(r.URL.Path, "/newsarticles/", "/toggle-status")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid article id")
		return
	}

	status, err := h.Svc.ToggleStatus(r.Context(), id, caller.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	if status && h.Published != nil {
		h.Published()
	}
	respond.OK(w, http.StatusOK, "article status updated", map[string]bool{"status": status})
}
