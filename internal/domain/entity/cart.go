package entity

// CartItem is an immutable snapshot of a product as priced when it was added
// to the caller's cart. It is a value copy, not a reference to the live
// catalog entry, so later price changes never propagate into the cart.
type CartItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       []byte `json:"image"`
	Price       int64  `json:"price"`
}

// CartTotal sums item prices in minor units. Division by 100 happens only at
// display time, never before the total is computed.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}

	return total
}
