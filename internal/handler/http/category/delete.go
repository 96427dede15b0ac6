package category

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// DeleteHandler deletes a category. The use case refuses when articles or
// subcategories still reference it.
type DeleteHandler struct{ Svc *catUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/category/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "category deleted", nil)
}
