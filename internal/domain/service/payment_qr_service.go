package service

import "storefront/internal/domain/entity"

// PaymentQRService renders a scannable UPI payment link for a placed order.
// The QR is a label for the shopper, not a processed transaction.
type PaymentQRService interface {
	// GenerateOrderQR generates a PNG QR code of the UPI deep link for the
	// order's total amount.
	GenerateOrderQR(order *entity.Order) ([]byte, error)
}
