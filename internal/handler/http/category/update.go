package category

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// UpdateHandler performs a full overwrite of a category.
type UpdateHandler struct{ Svc *catUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/category/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Svc.Update(r.Context(), catUC.UpdateInput{
		ID:          id,
		Name:        req.CategoryName,
		Description: req.Description,
		ParentID:    req.ParentCategoryID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "category updated", toDTO(updated, ""))
}
