package usecase

import "context"

// AddProductInput defines the data required to create a catalog entry.
// Price is the decimal major-unit string as typed ("19.99").
type AddProductInput struct {
	Name        string
	Description string
	Price       string
	Image       []byte
}

// UpdateProductInput defines the data for a product update. A nil Image
// signals "keep the existing image"; it is omitted from the remote payload
// rather than sent as an empty blob.
type UpdateProductInput struct {
	ID          int64
	Name        string
	Description string
	Price       string
	Image       []byte
}

// AdminProductUsecase defines the admin catalog workflow. The remote service
// enforces the admin requirement authoritatively; validation here is
// client-side courtesy only.
type AdminProductUsecase interface {
	AddProduct(ctx context.Context, input AddProductInput) error
	UpdateProduct(ctx context.Context, input UpdateProductInput) error

	// DeleteProduct requires prior explicit confirmation; without it, no
	// remote call is issued. Deletion is not undoable.
	DeleteProduct(ctx context.Context, id int64, confirmed bool) error
}
