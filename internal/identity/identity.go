// Package identity carries the authenticated caller through context. Login
// state is binary: a context either holds an identity or the caller is
// anonymous.
package identity

import (
	"context"

	"storefront/internal/domain/entity"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const keyIdentity contextKey = "identity"

// WithIdentity returns a new context carrying the caller identity.
func WithIdentity(ctx context.Context, ident *entity.Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, ident)
}

// FromContext extracts the caller identity. ok is false for anonymous
// callers.
func FromContext(ctx context.Context) (*entity.Identity, bool) {
	ident, ok := ctx.Value(keyIdentity).(*entity.Identity)
	if !ok || ident == nil || ident.Principal == "" {
		return nil, false
	}

	return ident, true
}
