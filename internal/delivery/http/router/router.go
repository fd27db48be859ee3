// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	ProfileHandler      *handler.ProfileHandler
	AdminProductHandler *handler.AdminProductHandler
	SessionMiddleware   *middleware.SessionMiddleware
	AdminMiddleware     *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every route resolves the optional session; the workflows decide where
	// identity is required.
	e.Use(r.params.SessionMiddleware.Resolve)

	// Catalog routes (public)
	e.GET("/products", r.params.CatalogHandler.GetProducts)
	e.GET("/products/:id", r.params.CatalogHandler.GetProduct)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("/items", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
	}

	// Checkout
	e.POST("/checkout", r.params.CheckoutHandler.Submit)

	// Order routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("/my", r.params.OrderHandler.GetMyOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.GET("/:id/payment-qr", r.params.OrderHandler.PaymentQR)
	}

	// Profile routes
	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("", r.params.ProfileHandler.GetProfile)
		profileGroup.PUT("", r.params.ProfileHandler.SaveProfile)
		profileGroup.GET("/role", r.params.ProfileHandler.GetRole)
	}

	// Admin routes carry the advisory admin gate; the remote service
	// re-checks authorization on every call.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AdminMiddleware.RequireAdmin)
	{
		adminGroup.GET("/orders", r.params.OrderHandler.ListOrders)
		adminGroup.GET("/orders/export", r.params.OrderHandler.Export)
		adminGroup.POST("/products", r.params.AdminProductHandler.Add)
		adminGroup.PUT("/products/:id", r.params.AdminProductHandler.Update)
		adminGroup.DELETE("/products/:id", r.params.AdminProductHandler.Delete)
		adminGroup.POST("/roles", r.params.ProfileHandler.AssignRole)
	}
}
