package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsdesk/internal/handler/http/requestid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Fatal("no request id in context")
	}
	if rec.Header().Get(requestid.RequestIDHeader) != seen {
		t.Fatal("response header does not match context id")
	}
}

func TestMiddleware_PropagatesIncomingID(t *testing.T) {
	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestid.RequestIDHeader, "client-supplied")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "client-supplied" {
		t.Fatalf("seen=%q", seen)
	}
}

func TestMiddleware_ReplacesGarbageID(t *testing.T) {
	cases := map[string]string{
		"control character": "abc\ndef",
		"too long":          strings.Repeat("x", 65),
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			var seen string
			h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set(requestid.RequestIDHeader, bad)
			h.ServeHTTP(httptest.NewRecorder(), req)

			if seen == bad || seen == "" {
				t.Fatalf("seen=%q, want a freshly generated id", seen)
			}
		})
	}
}

func TestFromContext_Empty(t *testing.T) {
	if got := requestid.FromContext(httptest.NewRequest("GET", "/", nil).Context()); got != "" {
		t.Fatalf("got %q", got)
	}
}
