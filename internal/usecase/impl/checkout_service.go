package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/cache"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	store  service.StoreService
	cart   usecase.CartUsecase
	cache  *cache.Store
	logger *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	store service.StoreService,
	cart usecase.CartUsecase,
	cacheStore *cache.Store,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		store:  store,
		cart:   cart,
		cache:  cacheStore,
		logger: logger,
	}
}

// Submit runs validation and the remote checkout call as one logical unit.
// Validation failures leave the caller in the editing phase without any
// remote mutation; a remote rejection returns the caller to editing with the
// typed field values intact (nothing else is retained).
func (srv *checkoutService) Submit(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	// Validation order is deliberate, cheapest first, failing on the first
	// violation so error messages are deterministic.
	if hasBlankField(input) {
		return &usecase.CheckoutOutput{Phase: usecase.PhaseEditing}, domainerrors.ErrValidationFailed
	}
	if !strings.Contains(input.Email, "@") {
		return &usecase.CheckoutOutput{Phase: usecase.PhaseEditing}, domainerrors.ErrInvalidEmail
	}

	items, err := srv.cart.GetCart(ctx)
	if err != nil {
		return &usecase.CheckoutOutput{Phase: usecase.PhaseFailed}, err
	}
	if len(items) == 0 {
		return &usecase.CheckoutOutput{Phase: usecase.PhaseEditing}, domainerrors.ErrEmptyCart
	}

	if !input.PaymentMethod.IsValid() {
		return &usecase.CheckoutOutput{Phase: usecase.PhaseEditing}, domainerrors.ErrInvalidPaymentMethod
	}

	srv.logger.Info("submitting checkout", "items", len(items), "paymentMethod", input.PaymentMethod.String())

	orderID, err := srv.store.Checkout(ctx, input.PaymentMethod)
	if err != nil {
		srv.logger.Error("checkout rejected", "error", err)

		return &usecase.CheckoutOutput{Phase: usecase.PhaseFailed}, domainerrors.ClassifyRemote(err)
	}

	// The remote service clears the cart as part of checkout; drop our copy
	// and the caller's order history.
	srv.cache.Invalidate(cartKey(ctx), myOrdersKey(ctx))

	return &usecase.CheckoutOutput{OrderID: orderID, Phase: usecase.PhaseSucceeded}, nil
}

func hasBlankField(input usecase.CheckoutInput) bool {
	fields := []string{input.Name, input.Email, input.Address, input.City, input.PostalCode}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}

	return false
}
