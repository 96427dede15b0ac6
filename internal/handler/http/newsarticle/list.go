package newsarticle

import (
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// ListActiveHandler serves the public feed: active articles in active
// categories, newest first. No authentication required.
type ListActiveHandler struct{ Svc *artUC.Service }

func (h ListActiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListActivePublic(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "articles retrieved", toDTOs(items))
}

// ListHandler serves the management listing: every article regardless of
// status, with the caller's per-row mutation rights.
type ListHandler struct{ Svc *artUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.FromContext(r.Context())
	if caller == nil {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.Svc.ListAll(r.Context(), caller.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "articles retrieved", toListItemDTOs(items))
}

// MyArticlesHandler lists only the articles the caller authored.
type MyArticlesHandler struct{ Svc *artUC.Service }

func (h MyArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.FromContext(r.Context())
	if caller == nil {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.Svc.ListMine(r.Context(), caller.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "articles retrieved", toListItemDTOs(items))
}

// SearchHandler matches the term against title, content, headline and tag
// names. A blank term falls back to the full listing.
type SearchHandler struct{ Svc *artUC.Service }

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.FromContext(r.Context())
	if caller == nil {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.Svc.Search(r.Context(), r.URL.Query().Get("keyword"), caller.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.OK(w, http.StatusOK, "articles retrieved", toListItemDTOs(items))
}
