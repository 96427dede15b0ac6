package category

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type writeRequest struct {
	CategoryName     string  `json:"categoryName"`
	Description      *string `json:"description"`
	ParentCategoryID *int64  `json:"parentCategoryId"`
	IsActive         bool    `json:"isActive"`
}

// CreateHandler creates a category.
type CreateHandler struct{ Svc *catUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		Name:        req.CategoryName,
		Description: req.Description,
		ParentID:    req.ParentCategoryID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusCreated, "category created", toDTO(created, ""))
}
