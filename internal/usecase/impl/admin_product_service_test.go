package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/cache"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminProductServiceFixtures holds all test dependencies for admin product
// service tests.
type adminProductServiceFixtures struct {
	service usecase.AdminProductUsecase
	store   *mockService.MockStoreService
	cache   *cache.Store
}

func createTestAdminProductService(t *testing.T, maxImageBytes int64) adminProductServiceFixtures {
	store := mockService.NewMockStoreService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cacheStore := cache.New(logger)
	cfg := &config.Config{Catalog: &config.CatalogConfig{MaxImageBytes: maxImageBytes}}
	service := NewAdminProductService(store, cacheStore, cfg, logger)

	return adminProductServiceFixtures{
		service: service,
		store:   store,
		cache:   cacheStore,
	}
}

// pngImage is a minimal payload http.DetectContentType recognizes as
// image/png.
func pngImage(size int) []byte {
	header := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	if size < len(header) {
		size = len(header)
	}

	return append(header, bytes.Repeat([]byte{0x00}, size-len(header))...)
}

func validAddProductInput() usecase.AddProductInput {
	return usecase.AddProductInput{
		Name:        "Espresso Beans",
		Description: "Dark roast, 500g",
		Price:       "12.99",
		Image:       pngImage(64),
	}
}

func TestAdminProductService_AddProduct_Success(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	fx.store.EXPECT().
		AddProduct(mock.Anything, "Espresso Beans", "Dark roast, 500g", int64(1299), mock.Anything).
		Return(nil).Once()

	err := fx.service.AddProduct(context.Background(), validAddProductInput())

	require.NoError(t, err)
}

func TestAdminProductService_AddProduct_BlankName(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	input := validAddProductInput()
	input.Name = "   "

	err := fx.service.AddProduct(context.Background(), input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.store.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminProductService_AddProduct_InvalidPrice(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	for _, price := range []string{"", "abc", "0", "-3.50", "0.001"} {
		input := validAddProductInput()
		input.Price = price

		err := fx.service.AddProduct(context.Background(), input)

		require.Error(t, err, "price %q", price)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_PRICE", appErr.ErrorCode(), "price %q", price)
	}

	fx.store.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminProductService_AddProduct_MissingImage(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	input := validAddProductInput()
	input.Image = nil

	err := fx.service.AddProduct(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrImageRequired)
}

func TestAdminProductService_AddProduct_NotAnImage(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	input := validAddProductInput()
	input.Image = []byte("just some plain text, definitely not pixels")

	err := fx.service.AddProduct(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrNotAnImage)
}

func TestAdminProductService_AddProduct_ImageTooLarge(t *testing.T) {
	fx := createTestAdminProductService(t, 32)

	input := validAddProductInput()
	input.Image = pngImage(33)

	err := fx.service.AddProduct(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
}

func TestAdminProductService_AddProduct_ImageAtLimitAccepted(t *testing.T) {
	fx := createTestAdminProductService(t, 32)

	fx.store.EXPECT().
		AddProduct(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	input := validAddProductInput()
	input.Image = pngImage(32)

	require.NoError(t, fx.service.AddProduct(context.Background(), input))
}

func TestAdminProductService_UpdateProduct_KeepsImageWhenAbsent(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	var captured service.ProductUpdate
	fx.store.EXPECT().
		UpdateProduct(mock.Anything, int64(7), mock.AnythingOfType("service.ProductUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, update service.ProductUpdate) error {
			captured = update
			return nil
		}).Once()

	err := fx.service.UpdateProduct(context.Background(), usecase.UpdateProductInput{
		ID:          7,
		Name:        "Espresso Beans",
		Description: "Dark roast, 1kg",
		Price:       "19.99",
	})

	require.NoError(t, err)
	require.NotNil(t, captured.Name)
	assert.Equal(t, "Espresso Beans", *captured.Name)
	require.NotNil(t, captured.Price)
	assert.Equal(t, int64(1999), *captured.Price)
	assert.Nil(t, captured.Image)
}

func TestAdminProductService_UpdateProduct_ReplacementImageChecked(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	err := fx.service.UpdateProduct(context.Background(), usecase.UpdateProductInput{
		ID:          7,
		Name:        "Espresso Beans",
		Description: "Dark roast, 1kg",
		Price:       "19.99",
		Image:       []byte("not pixels either"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotAnImage)
	fx.store.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminProductService_DeleteProduct_RequiresConfirmation(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	err := fx.service.DeleteProduct(context.Background(), 7, false)

	assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)
	fx.store.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
}

func TestAdminProductService_DeleteProduct_Confirmed(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	fx.store.EXPECT().DeleteProduct(mock.Anything, int64(7)).Return(nil).Once()

	require.NoError(t, fx.service.DeleteProduct(context.Background(), 7, true))
}

func TestAdminProductService_AddProduct_RemoteUnauthorized(t *testing.T) {
	fx := createTestAdminProductService(t, 5*1024*1024)

	fx.store.EXPECT().
		AddProduct(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	err := fx.service.AddProduct(context.Background(), validAddProductInput())

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REMOTE_CALL_FAILED", appErr.ErrorCode())
}
