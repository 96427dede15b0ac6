// Package tag provides the read-only HTTP handlers for tags. Tags are
// created implicitly through articles, so there are no write routes.
package tag

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	tagUC "newsdesk/internal/usecase/tag"
)

// DTO is the JSON projection of a tag.
type DTO struct {
	TagID   int64   `json:"tagId"`
	TagName string  `json:"tagName"`
	Note    *string `json:"note,omitempty"`
}

func toDTOs(tags []*entity.Tag) []DTO {
	out := make([]DTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, DTO{TagID: t.ID, TagName: t.Name, Note: t.Note})
	}
	return out
}

// ListHandler returns every tag ordered by name.
type ListHandler struct{ Svc *tagUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Svc.ListAll(r.Context())
	if err != nil {
		respond.InternalError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "tags retrieved", toDTOs(tags))
}

// SearchHandler matches the term against tag names. A blank term falls
// back to the full listing.
type SearchHandler struct{ Svc *tagUC.Service }

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Svc.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		respond.InternalError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "tags retrieved", toDTOs(tags))
}

// Register mounts the tag routes; both are anonymous.
func Register(mux *http.ServeMux, svc *tagUC.Service) {
	mux.Handle("GET    /tags", ListHandler{svc})
	mux.Handle("GET    /tags/search", SearchHandler{svc})
}
