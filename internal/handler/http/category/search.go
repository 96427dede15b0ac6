package category

import (
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// SearchHandler matches the term against category names and descriptions.
// A blank term falls back to the full listing.
type SearchHandler struct{ Svc *catUC.Service }

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	views, err := h.Svc.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "categories retrieved", toViewDTOs(views))
}

// SearchPagedHandler is the paginated variant of search.
type SearchPagedHandler struct{ Svc *catUC.Service }

func (h SearchPagedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Svc.SearchPaged(r.Context(), r.URL.Query().Get("keyword"), params)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.OK(w, http.StatusOK, "categories retrieved", pagination.Response[ViewDTO]{
		Data:       toViewDTOs(result.Data),
		Pagination: result.Pagination,
	})
}
