package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestClient(t *testing.T, handler http.HandlerFunc) service.StoreService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Backend: &config.BackendConfig{BaseURL: server.URL}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(cfg, logger)
}

func TestClient_GetProducts(t *testing.T) {
	client := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/getProducts", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]entity.Product{{ID: 1, Name: "Espresso Beans", Price: 1299}})
	})

	products, err := client.GetProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1299), products[0].Price)
}

func TestClient_ForwardsSessionAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		_, _ = w.Write([]byte("[]"))
	})

	ctx := identity.WithIdentity(context.Background(), &entity.Identity{Principal: "alice", Token: "session-token"})
	ctx = deliverycontext.WithRequestID(ctx, "req-123")

	_, err := client.GetCart(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
	assert.Equal(t, "req-123", gotRequestID)
}

func TestClient_AnonymousSendsNoAuthorization(t *testing.T) {
	var sawAuth bool
	client := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		_, _ = w.Write([]byte("[]"))
	})

	_, err := client.GetProducts(context.Background())

	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestClient_GetProduct_NullResult(t *testing.T) {
	client := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("null"))
	})

	product, err := client.GetProduct(context.Background(), 404)

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestClient_ErrorEnvelopeSurfacesRemoteMessage(t *testing.T) {
	client := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Unauthorized: Only admins can add products"}}`))
	})

	err := client.AddProduct(context.Background(), "Espresso Beans", "Dark roast", 1299, []byte{0x89})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized: Only admins can add products")
}

func TestClient_UpdateProduct_OmitsAbsentImage(t *testing.T) {
	var payload map[string]any
	client := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	})

	name := "Espresso Beans"
	price := int64(1999)
	err := client.UpdateProduct(context.Background(), 7, service.ProductUpdate{Name: &name, Price: &price})

	require.NoError(t, err)
	assert.Contains(t, payload, "name")
	assert.Contains(t, payload, "price")
	assert.NotContains(t, payload, "image")
	assert.NotContains(t, payload, "description")
}

func TestClient_Checkout(t *testing.T) {
	client := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var args map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&args))
		assert.Equal(t, "upi", args["paymentMethod"])

		_, _ = w.Write([]byte(`{"orderId":42}`))
	})

	orderID, err := client.Checkout(context.Background(), entity.PaymentUPI)

	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)
}
