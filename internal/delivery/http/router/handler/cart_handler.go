package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToCartInput struct {
	ProductID int64 `json:"productId" validate:"required"`
}

type cartView struct {
	Items []entity.CartItem `json:"items"`
	Total int64             `json:"total"`
}

// GetCart handles the cart read request.
func (h *CartHandler) GetCart(c echo.Context) error {
	items, err := h.uc.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartView{Items: items, Total: entity.CartTotal(items)}, "")
}

// AddItem handles adding a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Product id is required")
	}

	if err := h.uc.AddToCart(c.Request().Context(), input.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Product added to cart")
}

// Clear handles emptying the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
