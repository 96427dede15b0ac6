package newsarticle

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// writeError maps use case errors to HTTP responses. Ownership violations
// surface as 403; anything unrecognized becomes a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		respond.Validation(w, ve)
		return
	}
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, artUC.ErrForbidden):
		respond.Fail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, artUC.ErrInvalidArticleID),
		errors.Is(err, artUC.ErrCategoryNotFound),
		errors.Is(err, artUC.ErrInactiveCategory),
		errors.Is(err, artUC.ErrTooManyTags):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.InternalError(w, err)
	}
}
