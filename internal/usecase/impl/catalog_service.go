package impl

import (
	"context"
	"log/slog"

	"storefront/internal/cache"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	store  service.StoreService
	cache  *cache.Store
	logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	store service.StoreService,
	cacheStore *cache.Store,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		store:  store,
		cache:  cacheStore,
		logger: logger,
	}
}

// GetProducts is a read-through on the product-list key.
func (srv *catalogService) GetProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := cache.Query(ctx, srv.cache, cache.KeyProducts, srv.store.GetProducts)
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}

	return products, nil
}

// GetProduct is a read-through on the single-product key.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := cache.Query(ctx, srv.cache, cache.ProductKey(id), func(ctx context.Context) (*entity.Product, error) {
		return srv.store.GetProduct(ctx, id)
	})
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}
	if product == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("product not found")
	}

	return product, nil
}
