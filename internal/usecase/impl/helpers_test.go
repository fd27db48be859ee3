package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/identity"
)

// withTestIdentity attaches a signed-in caller to the context.
func withTestIdentity(ctx context.Context, principal string) context.Context {
	return identity.WithIdentity(ctx, &entity.Identity{
		Principal: principal,
		Token:     "token-" + principal,
	})
}
