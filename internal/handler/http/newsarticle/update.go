package newsarticle

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// UpdateHandler overwrites an article. Only the creator may update,
// regardless of role.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.FromContext(r.Context())
	if caller == nil {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/newsarticles/")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid article id")
		return
	}

	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:         id,
		Title:      req.Title,
		Headline:   req.Headline,
		Content:    req.Content,
		Source:     req.Source,
		CategoryID: req.CategoryID,
		Status:     req.Status,
		Tags:       req.Tags,
	}, caller.AccountID); err != nil {
		writeError(w, err)
		return
	}
	writeDetail(w, r, h.Svc, id, http.StatusOK, "article updated")
}
