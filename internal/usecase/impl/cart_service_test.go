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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service usecase.CartUsecase
	store   *mockService.MockStoreService
	cache   *cache.Store
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	store := mockService.NewMockStoreService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cacheStore := cache.New(logger)
	service := NewCartService(store, cacheStore, logger)

	return cartServiceFixtures{
		service: service,
		store:   store,
		cache:   cacheStore,
	}
}

func signedInContext(principal string) context.Context {
	return withTestIdentity(context.Background(), principal)
}

func TestCartService_AddToCart_Anonymous(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.AddToCart(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	fx.store.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_InvalidatesCachedCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := signedInContext("alice")

	first := []entity.CartItem{{ID: 1, Name: "Espresso Beans", Price: 1299}}
	second := []entity.CartItem{
		{ID: 1, Name: "Espresso Beans", Price: 1299},
		{ID: 2, Name: "Moka Pot", Price: 3450},
	}

	fx.store.EXPECT().GetCart(mock.Anything).Return(first, nil).Once()
	fx.store.EXPECT().AddToCart(mock.Anything, int64(2)).Return(nil).Once()
	fx.store.EXPECT().GetCart(mock.Anything).Return(second, nil).Once()

	items, err := fx.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, fx.service.AddToCart(ctx, 2))

	items, err = fx.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(4749), entity.CartTotal(items))
}

func TestCartService_AddToCart_RepeatedAddCallsRemoteEachTime(t *testing.T) {
	fx := createTestCartService(t)
	ctx := signedInContext("alice")

	fx.store.EXPECT().AddToCart(mock.Anything, int64(7)).Return(nil).Twice()

	require.NoError(t, fx.service.AddToCart(ctx, 7))
	require.NoError(t, fx.service.AddToCart(ctx, 7))
}

func TestCartService_ClearCartThenGetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := signedInContext("alice")

	fx.store.EXPECT().GetCart(mock.Anything).
		Return([]entity.CartItem{{ID: 1, Name: "Espresso Beans", Price: 1299}}, nil).Once()

	items, err := fx.service.GetCart(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	fx.store.EXPECT().ClearCart(mock.Anything).Return(nil).Once()
	fx.store.EXPECT().GetCart(mock.Anything).Return([]entity.CartItem{}, nil).Once()

	require.NoError(t, fx.service.ClearCart(ctx))

	items, err = fx.service.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, entity.CartTotal(items))
}

func TestCartService_GetCart_CachedBetweenReads(t *testing.T) {
	fx := createTestCartService(t)
	ctx := signedInContext("alice")

	fx.store.EXPECT().GetCart(mock.Anything).
		Return([]entity.CartItem{{ID: 3, Name: "Grinder", Price: 8999}}, nil).Once()

	for range 3 {
		items, err := fx.service.GetCart(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	}
}

func TestCartService_GetCart_ScopedPerCaller(t *testing.T) {
	fx := createTestCartService(t)

	fx.store.EXPECT().GetCart(mock.Anything).Return([]entity.CartItem{{ID: 1}}, nil).Once()
	fx.store.EXPECT().GetCart(mock.Anything).Return([]entity.CartItem{{ID: 2}, {ID: 3}}, nil).Once()

	aliceItems, err := fx.service.GetCart(signedInContext("alice"))
	require.NoError(t, err)
	bobItems, err := fx.service.GetCart(signedInContext("bob"))
	require.NoError(t, err)

	assert.Len(t, aliceItems, 1)
	assert.Len(t, bobItems, 2)
}
