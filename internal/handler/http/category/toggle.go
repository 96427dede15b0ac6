package category

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// ToggleStatusHandler flips a category's active flag and reports the new
// state.
type ToggleStatusHandler struct{ Svc *catUC.Service }

func (h ToggleStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractIDBetween(r.URL.Path, "/category/", "/toggle-status")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid category id")
		return
	}

	active, err := h.Svc.ToggleStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "category status updated", map[string]bool{"isActive": active})
}
