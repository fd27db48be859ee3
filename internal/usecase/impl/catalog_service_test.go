package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/cache"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service usecase.CatalogUsecase
	store   *mockService.MockStoreService
	cache   *cache.Store
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	store := mockService.NewMockStoreService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cacheStore := cache.New(logger)
	service := NewCatalogService(store, cacheStore, logger)

	return catalogServiceFixtures{
		service: service,
		store:   store,
		cache:   cacheStore,
	}
}

func TestCatalogService_GetProducts_CachedBetweenReads(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.store.EXPECT().GetProducts(mock.Anything).
		Return([]entity.Product{{ID: 1, Name: "Espresso Beans", Price: 1299}}, nil).Once()

	for range 3 {
		products, err := fx.service.GetProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	}
}

func TestCatalogService_GetProduct_Found(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.store.EXPECT().GetProduct(mock.Anything, int64(1)).
		Return(&entity.Product{ID: 1, Name: "Espresso Beans", Price: 1299}, nil).Once()

	product, err := fx.service.GetProduct(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Espresso Beans", product.Name)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.store.EXPECT().GetProduct(mock.Anything, int64(404)).Return(nil, nil).Once()

	product, err := fx.service.GetProduct(context.Background(), 404)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_GetProducts_RefetchedAfterCatalogInvalidation(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.store.EXPECT().GetProducts(mock.Anything).
		Return([]entity.Product{{ID: 1, Name: "Espresso Beans"}}, nil).Once()
	fx.store.EXPECT().GetProducts(mock.Anything).
		Return([]entity.Product{{ID: 1, Name: "Espresso Beans"}, {ID: 2, Name: "Moka Pot"}}, nil).Once()
	fx.store.EXPECT().GetProduct(mock.Anything, int64(1)).
		Return(&entity.Product{ID: 1, Name: "Espresso Beans"}, nil).Twice()

	products, err := fx.service.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = fx.service.GetProduct(ctx, 1)
	require.NoError(t, err)

	// A catalog mutation drops the list and every single-product entry.
	fx.cache.InvalidatePrefix(cache.KeyProducts)

	products, err = fx.service.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = fx.service.GetProduct(ctx, 1)
	require.NoError(t, err)
}
