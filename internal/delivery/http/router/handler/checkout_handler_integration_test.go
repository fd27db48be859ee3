package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/cache"
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	"storefront/internal/identity"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutTestServer(t *testing.T, store *mockService.MockStoreService) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cacheStore := cache.New(logger)
	cart := impl.NewCartService(store, cacheStore, logger)
	checkout := impl.NewCheckoutService(store, cart, cacheStore, logger)
	handler := NewCheckoutHandler(checkout, logger)

	e := echo.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/checkout", handler.Submit)

	return e
}

func TestCheckoutHandler_Submit_Integration(t *testing.T) {
	store := mockService.NewMockStoreService(t)
	store.EXPECT().GetCart(mock.Anything).
		Return([]entity.CartItem{{ID: 1, Name: "Espresso Beans", Price: 1299}}, nil).Once()
	store.EXPECT().Checkout(mock.Anything, entity.PaymentUPI).Return(int64(42), nil).Once()

	e := newCheckoutTestServer(t, store)

	body := `{"name":"Alice Doe","email":"alice@example.com","address":"1 Bean Street","city":"Pune","postalCode":"411001","paymentMethod":"upi"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(identity.WithIdentity(req.Context(), &entity.Identity{Principal: "alice", Token: "tok"}))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"orderId":42`)
	assert.Contains(t, responseBody, `"phase":"succeeded"`)
}

func TestCheckoutHandler_Submit_ValidationEnvelope_Integration(t *testing.T) {
	store := mockService.NewMockStoreService(t)
	e := newCheckoutTestServer(t, store)

	// City is blank, so validation fails before any remote call.
	body := `{"name":"Alice Doe","email":"alice@example.com","address":"1 Bean Street","city":"","postalCode":"411001","paymentMethod":"upi"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":false`)
	assert.Contains(t, responseBody, "VALIDATION_FAILED")
	assert.Contains(t, responseBody, "Please fill in all fields")
}
