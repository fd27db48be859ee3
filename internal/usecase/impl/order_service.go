package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/cache"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/identity"
	"storefront/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	store  service.StoreService
	qr     service.PaymentQRService
	cache  *cache.Store
	logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	store service.StoreService,
	qr service.PaymentQRService,
	cacheStore *cache.Store,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		store:  store,
		qr:     qr,
		cache:  cacheStore,
		logger: logger,
	}
}

func callerPrincipal(ctx context.Context) string {
	if ident, ok := identity.FromContext(ctx); ok {
		return ident.Principal
	}

	return ""
}

// myOrdersKey is the caller-scoped order-history read key.
func myOrdersKey(ctx context.Context) string {
	return cache.ForCaller(cache.KeyMyOrders, callerPrincipal(ctx))
}

// GetOrder is a read-through on the caller-scoped single-order key. The
// remote service decides whether the caller may see the order.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	key := cache.ForCaller(cache.OrderKey(id), callerPrincipal(ctx))
	order, err := cache.Query(ctx, srv.cache, key, func(ctx context.Context) (*entity.Order, error) {
		return srv.store.GetOrder(ctx, id)
	})
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}
	if order == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
	}

	return order, nil
}

// GetMyOrders returns the caller's order history.
func (srv *orderService) GetMyOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := cache.Query(ctx, srv.cache, myOrdersKey(ctx), srv.store.GetMyOrders)
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}

	return orders, nil
}

// GetOrders lists every customer order; the remote service enforces the
// admin requirement.
func (srv *orderService) GetOrders(ctx context.Context) ([]entity.Order, error) {
	key := cache.ForCaller(cache.KeyOrders, callerPrincipal(ctx))
	orders, err := cache.Query(ctx, srv.cache, key, srv.store.GetOrders)
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}

	return orders, nil
}

// ExportOrders renders the admin order list as CSV.
func (srv *orderService) ExportOrders(ctx context.Context) (*usecase.ExportOutput, error) {
	orders, err := srv.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	csvBytes, err := renderOrdersCSV(orders)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("exported customer orders", "orders", len(orders))

	return &usecase.ExportOutput{
		Filename: "customer-data-" + time.Now().Format("2006-01-02") + ".csv",
		CSV:      csvBytes,
	}, nil
}

// PaymentQR renders the UPI payment QR PNG for an order paid by UPI.
func (srv *orderService) PaymentQR(ctx context.Context, id int64) ([]byte, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != entity.PaymentUPI {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order was not placed with UPI")
	}

	png, err := srv.qr.GenerateOrderQR(order)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}
