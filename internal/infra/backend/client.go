// Package backend implements the remote storefront service contract over
// HTTP JSON.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/identity"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// client is the HTTP JSON implementation of StoreService. Every method maps
// to exactly one POST of the form {baseURL}/api/{method}; the caller's
// session token rides along as a bearer header. There are no retries: a
// failed mutation surfaces to the caller, who decides whether to resubmit.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// errorEnvelope is the remote error response body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates the remote storefront client from config.
func NewClient(cfg *config.Config, logger *slog.Logger) service.StoreService {
	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL: cfg.Backend.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// call performs one remote invocation. args may be nil for zero-argument
// methods; out may be nil for methods without a result.
func (c *client) call(ctx context.Context, method string, args, out any) error {
	var body io.Reader
	if args != nil {
		payload, err := json.Marshal(args)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+method, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Forward the caller's session token so the remote service sees the
	// same caller.
	if ident, ok := identity.FromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+ident.Token)
	}

	// Add X-Request-Id header for tracing
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "call %s", method)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(method, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s response", method)
	}

	return nil
}

// decodeError turns a non-2xx response into an error carrying the remote
// message, which downstream classification pattern-matches.
func (c *client) decodeError(method string, resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return errors.Errorf("call %s: status %d", method, resp.StatusCode)
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		c.logger.Warn("remote call rejected",
			slog.String("method", method),
			slog.Int("status", resp.StatusCode),
			slog.String("code", envelope.Error.Code),
		)

		return errors.Errorf("call %s: %s", method, envelope.Error.Message)
	}

	return errors.Errorf("call %s: status %d: %s", method, resp.StatusCode, string(raw))
}

func (c *client) GetProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.call(ctx, "getProducts", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product *entity.Product
	if err := c.call(ctx, "getProduct", map[string]any{"id": id}, &product); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *client) AddProduct(ctx context.Context, name, description string, price int64, image []byte) error {
	args := map[string]any{
		"name":        name,
		"description": description,
		"price":       price,
		"image":       image,
	}

	return c.call(ctx, "addProduct", args, nil)
}

func (c *client) UpdateProduct(ctx context.Context, id int64, update service.ProductUpdate) error {
	// Nil fields stay absent from the payload so the remote service keeps
	// the stored values.
	args := map[string]any{"id": id}
	if update.Name != nil {
		args["name"] = *update.Name
	}
	if update.Description != nil {
		args["description"] = *update.Description
	}
	if update.Price != nil {
		args["price"] = *update.Price
	}
	if update.Image != nil {
		args["image"] = update.Image
	}

	return c.call(ctx, "updateProduct", args, nil)
}

func (c *client) DeleteProduct(ctx context.Context, id int64) error {
	return c.call(ctx, "deleteProduct", map[string]any{"id": id}, nil)
}

func (c *client) GetCart(ctx context.Context) ([]entity.CartItem, error) {
	var items []entity.CartItem
	if err := c.call(ctx, "getCart", nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *client) AddToCart(ctx context.Context, productID int64) error {
	return c.call(ctx, "addToCart", map[string]any{"productId": productID}, nil)
}

func (c *client) ClearCart(ctx context.Context) error {
	return c.call(ctx, "clearCart", nil, nil)
}

func (c *client) Checkout(ctx context.Context, method entity.PaymentMethod) (int64, error) {
	var result struct {
		OrderID int64 `json:"orderId"`
	}
	if err := c.call(ctx, "checkout", map[string]any{"paymentMethod": method}, &result); err != nil {
		return 0, err
	}

	return result.OrderID, nil
}

func (c *client) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	var order *entity.Order
	if err := c.call(ctx, "getOrder", map[string]any{"id": id}, &order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *client) GetOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.call(ctx, "getOrders", nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *client) GetMyOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.call(ctx, "getMyOrders", nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *client) GetCallerUserProfile(ctx context.Context) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	if err := c.call(ctx, "getCallerUserProfile", nil, &profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (c *client) SaveCallerUserProfile(ctx context.Context, profile entity.UserProfile) error {
	return c.call(ctx, "saveCallerUserProfile", profile, nil)
}

func (c *client) GetUserProfile(ctx context.Context, principal string) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	if err := c.call(ctx, "getUserProfile", map[string]any{"principal": principal}, &profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (c *client) GetCallerUserRole(ctx context.Context) (entity.Role, error) {
	var result struct {
		Role entity.Role `json:"role"`
	}
	if err := c.call(ctx, "getCallerUserRole", nil, &result); err != nil {
		return "", err
	}

	return result.Role, nil
}

func (c *client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var result struct {
		IsAdmin bool `json:"isAdmin"`
	}
	if err := c.call(ctx, "isCallerAdmin", nil, &result); err != nil {
		return false, err
	}

	return result.IsAdmin, nil
}

func (c *client) AssignCallerUserRole(ctx context.Context, principal string, role entity.Role) error {
	args := map[string]any{
		"principal": principal,
		"role":      role,
	}

	return c.call(ctx, "assignCallerUserRole", args, nil)
}
