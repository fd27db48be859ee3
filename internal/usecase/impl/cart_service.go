// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/cache"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/identity"
	"storefront/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	store  service.StoreService
	cache  *cache.Store
	logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	store service.StoreService,
	cacheStore *cache.Store,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		store:  store,
		cache:  cacheStore,
		logger: logger,
	}
}

// cartKey is the caller-scoped cart read key.
func cartKey(ctx context.Context) string {
	principal := ""
	if ident, ok := identity.FromContext(ctx); ok {
		principal = ident.Principal
	}

	return cache.ForCaller(cache.KeyCart, principal)
}

// AddToCart appends one line entry for the product to the caller's cart.
func (srv *cartService) AddToCart(ctx context.Context, productID int64) error {
	ident, ok := identity.FromContext(ctx)
	if !ok {
		// Pre-emptive gate: an anonymous caller has no addressable cart, so
		// no remote call is issued at all.
		return domainerrors.ErrUnauthenticated.WrapMessage("add to cart requires a signed-in caller")
	}

	srv.logger.Debug("adding product to cart", "principal", ident.Principal, "productID", productID)

	if err := srv.store.AddToCart(ctx, productID); err != nil {
		return domainerrors.ClassifyRemote(err)
	}

	srv.cache.Invalidate(cartKey(ctx))

	return nil
}

// ClearCart empties the caller's cart.
func (srv *cartService) ClearCart(ctx context.Context) error {
	if err := srv.store.ClearCart(ctx); err != nil {
		return domainerrors.ClassifyRemote(err)
	}

	srv.cache.Invalidate(cartKey(ctx))

	return nil
}

// GetCart is a read-through on the caller-scoped cart key.
func (srv *cartService) GetCart(ctx context.Context) ([]entity.CartItem, error) {
	items, err := cache.Query(ctx, srv.cache, cartKey(ctx), srv.store.GetCart)
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}

	return items, nil
}
