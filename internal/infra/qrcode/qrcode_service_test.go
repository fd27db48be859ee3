package qrcode

import (
	"bytes"
	"image/png"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
)

func createTestQRService(t *testing.T) *qrcodeService {
	cfg := &config.Config{
		PaymentQR: &config.PaymentQRConfig{
			PayeeID:              "store@upi",
			PayeeName:            "Storefront",
			Size:                 256,
			ErrorCorrectionLevel: "M",
		},
	}

	return NewPaymentQRService(cfg).(*qrcodeService)
}

func TestQRCodeService_PaymentLink(t *testing.T) {
	svc := createTestQRService(t)

	link := svc.paymentLink(&entity.Order{ID: 42, Total: 2598})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "upi", parsed.Scheme)
	assert.Equal(t, "store@upi", parsed.Query().Get("pa"))
	assert.Equal(t, "Storefront", parsed.Query().Get("pn"))
	assert.Equal(t, "25.98", parsed.Query().Get("am"))
	assert.Equal(t, "INR", parsed.Query().Get("cu"))
	assert.Equal(t, "Order 42", parsed.Query().Get("tn"))
}

func TestQRCodeService_GenerateOrderQR_ProducesPNG(t *testing.T) {
	svc := createTestQRService(t)

	data, err := svc.GenerateOrderQR(&entity.Order{ID: 42, Total: 2598})

	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
