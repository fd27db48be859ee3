package impl

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrdersCSV_EscapesSpecialCharacters(t *testing.T) {
	orders := []entity.Order{
		{
			ID:            12,
			Items:         []entity.OrderItem{{Product: entity.Product{Name: "Espresso Beans", Price: 1299}, Quantity: 2}},
			Total:         2598,
			PaymentMethod: entity.PaymentUPI,
			Details: entity.CustomerDetails{
				Name:            `He said "hi", ok`,
				Email:           "alice@example.com",
				ContactNumber:   "+91 99999 00000",
				ShippingAddress: "1 Bean Street\nPune",
			},
			CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
	}

	out, err := renderOrdersCSV(orders)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"He said ""hi"", ok"`)
	assert.Contains(t, string(out), "\"1 Bean Street\nPune\"")

	// Parsing the output must yield exactly the values that went in.
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, `He said "hi", ok`, records[1][1])
	assert.Equal(t, "1 Bean Street\nPune", records[1][4])
	assert.Equal(t, "2026-03-14", records[1][5])
	assert.Equal(t, "UPI", records[1][9])
	assert.Equal(t, "25.98", records[1][10])
}

func TestRenderOrdersCSV_MultiItemColumns(t *testing.T) {
	orders := []entity.Order{
		{
			ID: 5,
			Items: []entity.OrderItem{
				{Product: entity.Product{Name: "Espresso Beans", Price: 1299}, Quantity: 2},
				{Product: entity.Product{Name: "Moka Pot", Price: 3450}, Quantity: 1},
			},
			Total:         6048,
			PaymentMethod: entity.PaymentCashOnDelivery,
			CreatedAt:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	out, err := renderOrdersCSV(orders)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "Espresso Beans; Moka Pot", row[6])
	assert.Equal(t, "2; 1", row[7])
	assert.Equal(t, "12.99; 34.50", row[8])
	assert.Equal(t, "Cash on Delivery", row[9])
	assert.Equal(t, "60.48", row[10])
}

func TestRenderOrdersCSV_MissingTimestamp(t *testing.T) {
	orders := []entity.Order{{ID: 3, PaymentMethod: entity.PaymentUPI}}

	out, err := renderOrdersCSV(orders)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "N/A", records[1][5])
}

func TestRenderOrdersCSV_EmptyOrderList(t *testing.T) {
	out, err := renderOrdersCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, exportHeader, records[0])
}
