package category

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// writeError maps use case errors to HTTP responses. Conflicts (duplicate
// names, usage guards) surface as 400 with their message; anything
// unrecognized becomes a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		respond.Validation(w, ve)
		return
	}
	switch {
	case errors.Is(err, catUC.ErrCategoryNotFound):
		respond.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catUC.ErrInvalidCategoryID),
		errors.Is(err, catUC.ErrDuplicateName),
		errors.Is(err, catUC.ErrParentNotFound),
		errors.Is(err, catUC.ErrCircularReference),
		errors.Is(err, catUC.ErrHasArticles),
		errors.Is(err, catUC.ErrHasSubcategories):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.InternalError(w, err)
	}
}
