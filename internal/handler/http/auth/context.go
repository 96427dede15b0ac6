// Package auth provides the login endpoint and the middleware that
// authenticates requests and stores the caller's identity on the context.
package auth

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the authenticated caller.
func WithIdentity(ctx context.Context, id *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext returns the authenticated caller, or nil for anonymous
// requests.
func FromContext(ctx context.Context) *entity.Identity {
	id, _ := ctx.Value(identityKey).(*entity.Identity)
	return id
}
