package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase defines the cart workflow. The cart is scoped to the
// authenticated caller; an anonymous caller has no addressable cart.
type CartUsecase interface {
	// AddToCart appends one line entry for the product. Requires an
	// authenticated caller; fails with ErrUnauthenticated before any remote
	// call otherwise. Repeated adds are repeated entries, never deduplicated
	// client-side.
	AddToCart(ctx context.Context, productID int64) error

	// ClearCart empties the caller's cart unconditionally.
	ClearCart(ctx context.Context) error

	// GetCart returns the cart's item snapshots in add order. An empty cart
	// is a valid, non-error result.
	GetCart(ctx context.Context) ([]entity.CartItem, error)
}
