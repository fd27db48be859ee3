package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/cache"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// adminProductService implements the AdminProductUsecase interface. The
// remote service enforces the admin requirement authoritatively; everything
// validated here is a client-side courtesy check.
type adminProductService struct {
	store         service.StoreService
	cache         *cache.Store
	maxImageBytes int64
	logger        *slog.Logger
}

// NewAdminProductService is the constructor for adminProductService.
func NewAdminProductService(
	store service.StoreService,
	cacheStore *cache.Store,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminProductUsecase {
	return &adminProductService{
		store:         store,
		cache:         cacheStore,
		maxImageBytes: cfg.Catalog.MaxImageBytes,
		logger:        logger,
	}
}

// AddProduct validates and creates a catalog entry.
func (srv *adminProductService) AddProduct(ctx context.Context, input usecase.AddProductInput) error {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" || description == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and description are required")
	}

	price, err := entity.ParsePrice(input.Price)
	if err != nil {
		return domainerrors.ErrInvalidPrice.WithDetails(err.Error())
	}

	if len(input.Image) == 0 {
		return domainerrors.ErrImageRequired
	}
	if err := srv.checkImage(input.Image); err != nil {
		return err
	}

	srv.logger.Info("adding product", "name", name, "price", price)

	if err := srv.store.AddProduct(ctx, name, description, price, input.Image); err != nil {
		return domainerrors.ClassifyRemote(err)
	}

	srv.cache.InvalidatePrefix(cache.KeyProducts)

	return nil
}

// UpdateProduct validates and updates a catalog entry. A nil image keeps the
// existing one; the field is absent from the payload, not an empty blob.
func (srv *adminProductService) UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) error {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" || description == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and description are required")
	}

	price, err := entity.ParsePrice(input.Price)
	if err != nil {
		return domainerrors.ErrInvalidPrice.WithDetails(err.Error())
	}

	if input.Image != nil {
		if err := srv.checkImage(input.Image); err != nil {
			return err
		}
	}

	update := service.ProductUpdate{
		Name:        &name,
		Description: &description,
		Price:       &price,
		Image:       input.Image,
	}

	srv.logger.Info("updating product", "id", input.ID, "price", price, "imageReplaced", input.Image != nil)

	if err := srv.store.UpdateProduct(ctx, input.ID, update); err != nil {
		return domainerrors.ClassifyRemote(err)
	}

	srv.cache.InvalidatePrefix(cache.KeyProducts)

	return nil
}

// DeleteProduct removes a catalog entry after explicit confirmation.
func (srv *adminProductService) DeleteProduct(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		// A delete intent without confirmation never reaches the remote
		// service; deletion is not undoable.
		return domainerrors.ErrConfirmationRequired
	}

	srv.logger.Info("deleting product", "id", id)

	if err := srv.store.DeleteProduct(ctx, id); err != nil {
		return domainerrors.ClassifyRemote(err)
	}

	srv.cache.InvalidatePrefix(cache.KeyProducts)

	return nil
}

// checkImage applies the client-side MIME and size courtesy checks; the
// remote service remains the authority.
func (srv *adminProductService) checkImage(image []byte) error {
	if !strings.HasPrefix(http.DetectContentType(image), "image/") {
		return domainerrors.ErrNotAnImage
	}
	if int64(len(image)) > srv.maxImageBytes {
		return domainerrors.ErrImageTooLarge
	}

	return nil
}
