package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ExportOutput is a rendered CSV export ready for download.
type ExportOutput struct {
	Filename string
	CSV      []byte
}

// OrderUsecase defines read access to placed orders and the admin export.
type OrderUsecase interface {
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	GetMyOrders(ctx context.Context) ([]entity.Order, error)

	// GetOrders lists every customer order; admin-gated by the remote
	// service.
	GetOrders(ctx context.Context) ([]entity.Order, error)

	// ExportOrders renders the admin order list as CSV.
	ExportOrders(ctx context.Context) (*ExportOutput, error)

	// PaymentQR renders the UPI payment QR PNG for an order paid by UPI.
	PaymentQR(ctx context.Context, id int64) ([]byte, error)
}
