package category

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// ListHandler returns every category with usage counts for the management
// view.
type ListHandler struct{ Svc *catUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	views, err := h.Svc.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "categories retrieved", toViewDTOs(views))
}

// ListActiveHandler returns the active categories for public consumption.
type ListActiveHandler struct{ Svc *catUC.Service }

func (h ListActiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "active categories retrieved", toDTOs(categories))
}

// TreeHandler returns the full hierarchy as nested nodes with article
// counts.
type TreeHandler struct{ Svc *catUC.Service }

func (h TreeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Svc.Tree(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "category tree retrieved", tree)
}
