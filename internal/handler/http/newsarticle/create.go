package newsarticle

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type writeRequest struct {
	Title      string   `json:"title"`
	Headline   *string  `json:"headline"`
	Content    string   `json:"content"`
	Source     *string  `json:"source"`
	CategoryID int64    `json:"categoryId"`
	Status     bool     `json:"status"`
	Tags       []string `json:"tags"`
}

// PublishRecorder is the metrics hook fired when an article goes live.
// Wired to the Prometheus counter in main; nil disables it.
type PublishRecorder func()

// CreateHandler creates an article owned by the caller.
type CreateHandler struct {
	Svc       *artUC.Service
	Published PublishRecorder
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.FromContext(r.Context())
	if caller == nil {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:      req.Title,
		Headline:   req.Headline,
		Content:    req.Content,
		Source:     req.Source,
		CategoryID: req.CategoryID,
		Status:     req.Status,
		Tags:       req.Tags,
	}, caller.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	if created.Status && h.Published != nil {
		h.Published()
	}
	writeDetail(w, r, h.Svc, created.ID, http.StatusCreated, "article created")
}
