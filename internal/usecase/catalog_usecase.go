// Package usecase contains the application-specific business rules.
// It orchestrates the cache and the remote storefront service.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines read access to the product catalog.
type CatalogUsecase interface {
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}
