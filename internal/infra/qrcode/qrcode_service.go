package qrcode

import (
	"fmt"
	"net/url"
	"strconv"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	payeeID              string
	payeeName            string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewPaymentQRService creates a new payment QR service instance
func NewPaymentQRService(cfg *config.Config) service.PaymentQRService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch cfg.PaymentQR.ErrorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		payeeID:              cfg.PaymentQR.PayeeID,
		payeeName:            cfg.PaymentQR.PayeeName,
		size:                 cfg.PaymentQR.Size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR generates a PNG QR code of the UPI deep link for the
// order's total amount.
func (s *qrcodeService) GenerateOrderQR(order *entity.Order) ([]byte, error) {
	// Generate QR code
	qrCode, err := qrcode.New(s.paymentLink(order), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// paymentLink builds the UPI deep link for the order's total amount.
func (s *qrcodeService) paymentLink(order *entity.Order) string {
	params := url.Values{}
	params.Set("pa", s.payeeID)
	params.Set("pn", s.payeeName)
	params.Set("am", entity.FormatPrice(order.Total))
	params.Set("cu", "INR")
	params.Set("tn", "Order "+strconv.FormatInt(order.ID, 10))

	return "upi://pay?" + params.Encode()
}
