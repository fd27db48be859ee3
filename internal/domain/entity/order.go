package entity

import "time"

// OrderItem is a product snapshot inside a placed order together with the
// quantity the remote service aggregated at checkout time.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// CustomerDetails is the contact and shipping information the remote service
// recorded for an order.
type CustomerDetails struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	ContactNumber   string `json:"contactNumber"`
	ShippingAddress string `json:"shippingAddress"`
}

// Order is immutable once created. Total equals the sum of the constituent
// product prices at order-creation time; both are authoritative values from
// the remote service. CreatedAt is supplied by the remote service, a zero
// value means the service did not record a timestamp.
type Order struct {
	ID            int64           `json:"id"`
	Items         []OrderItem     `json:"items"`
	Total         int64           `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Customer      string          `json:"customer"`
	Details       CustomerDetails `json:"details"`
	CreatedAt     time.Time       `json:"createdAt"`
}
