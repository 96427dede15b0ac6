package auth

import (
	"net/http"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/service/auth"
)

// Verifier checks a bearer token and returns the identity it encodes.
type Verifier interface {
	Verify(token string) (*entity.Identity, error)
}

var _ Verifier = (*auth.Service)(nil)

// bearerToken extracts the token from the Authorization header. It returns
// "" when the header is missing or not a Bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Optional authenticates the request when a bearer token is present and
// leaves it anonymous otherwise. An invalid token is still rejected: a
// caller who presents credentials must present valid ones.
func Optional(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := v.Verify(token)
			if err != nil {
				respond.Fail(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// Require rejects unauthenticated requests with 401.
func Require(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respond.Fail(w, http.StatusUnauthorized, "authentication required")
				return
			}
			identity, err := v.Verify(token)
			if err != nil {
				respond.Fail(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRoles rejects authenticated callers whose role is not in the
// allowed set with 403. It must run inside Require.
func RequireRoles(roles ...entity.Role) func(http.Handler) http.Handler {
	allowed := make(map[entity.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := FromContext(r.Context())
			if identity == nil {
				respond.Fail(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !allowed[identity.Role] {
				respond.Fail(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
