package entity

// PaymentMethod is the closed set of payment options a checkout accepts.
// Payment is a recorded label, not a processed transaction.
type PaymentMethod string

const (
	// PaymentUPI indicates payment via a UPI transfer.
	PaymentUPI PaymentMethod = "upi"
	// PaymentCashOnDelivery indicates payment on delivery.
	PaymentCashOnDelivery PaymentMethod = "cashOnDelivery"
)

// String returns the wire representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentUPI, PaymentCashOnDelivery:
		return true
	default:
		return false
	}
}

// Label returns the human-readable form used in exports and confirmations.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentUPI:
		return "UPI"
	case PaymentCashOnDelivery:
		return "Cash on Delivery"
	default:
		return string(m)
	}
}
