package category

import (
	"net/http"
	"strings"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// GetHandler serves /category/{id} plus the /subcategories and /can-delete
// sub-resources, all mounted under the same trailing-slash prefix.
type GetHandler struct{ Svc *catUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/subcategories") {
		h.subcategories(w, r)
		return
	}
	if strings.HasSuffix(r.URL.Path, "/can-delete") {
		h.canDelete(w, r)
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/category/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid category id")
		return
	}

	detail, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	out := DetailDTO{
		DTO:           toDTO(detail.Category, detail.ParentName),
		SubCategories: toDTOs(detail.SubCategories),
	}
	respond.OK(w, http.StatusOK, "category retrieved", out)
}

func (h GetHandler) subcategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractIDBetween(r.URL.Path, "/category/", "/subcategories")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid category id")
		return
	}

	children, err := h.Svc.SubCategories(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "subcategories retrieved", toDTOs(children))
}

func (h GetHandler) canDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractIDBetween(r.URL.Path, "/category/", "/can-delete")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid category id")
		return
	}

	ok, err := h.Svc.CanDelete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "deletability checked", map[string]bool{"canDelete": ok})
}
