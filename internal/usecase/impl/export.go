package impl

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// exportHeader is the fixed CSV header of the customer order export.
var exportHeader = []string{
	"Order ID",
	"Customer Name",
	"Email",
	"Phone",
	"Address",
	"Order Date",
	"Products",
	"Quantities",
	"Prices",
	"Payment Method",
	"Total",
}

// renderOrdersCSV is a pure transform from an order list to CSV text.
// encoding/csv applies the escaping contract: fields containing a comma,
// double quote, or newline are wrapped in double quotes with internal quotes
// doubled.
func renderOrdersCSV(orders []entity.Order) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}

	for _, order := range orders {
		names := make([]string, 0, len(order.Items))
		quantities := make([]string, 0, len(order.Items))
		prices := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			names = append(names, item.Product.Name)
			quantities = append(quantities, strconv.FormatInt(item.Quantity, 10))
			prices = append(prices, entity.FormatPrice(item.Product.Price))
		}

		orderDate := "N/A"
		if !order.CreatedAt.IsZero() {
			orderDate = order.CreatedAt.Format("2006-01-02")
		}

		record := []string{
			strconv.FormatInt(order.ID, 10),
			order.Details.Name,
			order.Details.Email,
			order.Details.ContactNumber,
			order.Details.ShippingAddress,
			orderDate,
			strings.Join(names, "; "),
			strings.Join(quantities, "; "),
			strings.Join(prices, "; "),
			order.PaymentMethod.Label(),
			entity.FormatPrice(order.Total),
		}
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrapf(err, "write csv record for order %d", order.ID)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "flush csv")
	}

	return buf.Bytes(), nil
}
