// Package service defines the interfaces for external collaborators the
// workflows depend on.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductUpdate carries the fields of an update call. Nil fields mean "keep
// the existing value" and are omitted from the payload entirely; in
// particular a nil Image is not the same as an empty blob.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *int64
	Image       []byte
}

// StoreService is the remote storefront service contract. The remote service
// is the authority for all persisted state; every method issues exactly one
// remote call. Caller-scoped operations (cart, my orders, caller profile)
// derive the caller from the identity attached to ctx.
type StoreService interface {
	// Catalog
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	AddProduct(ctx context.Context, name, description string, price int64, image []byte) error
	UpdateProduct(ctx context.Context, id int64, update ProductUpdate) error
	DeleteProduct(ctx context.Context, id int64) error

	// Cart
	GetCart(ctx context.Context) ([]entity.CartItem, error)
	AddToCart(ctx context.Context, productID int64) error
	ClearCart(ctx context.Context) error

	// Checkout and orders
	Checkout(ctx context.Context, method entity.PaymentMethod) (int64, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	GetOrders(ctx context.Context) ([]entity.Order, error)
	GetMyOrders(ctx context.Context) ([]entity.Order, error)

	// Profiles and roles
	GetCallerUserProfile(ctx context.Context) (*entity.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile entity.UserProfile) error
	GetUserProfile(ctx context.Context, principal string) (*entity.UserProfile, error)
	GetCallerUserRole(ctx context.Context) (entity.Role, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignCallerUserRole(ctx context.Context, principal string, role entity.Role) error
}
