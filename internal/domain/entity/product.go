// Package entity contains the core business objects of the project.
package entity

// Product is a catalog entry as served by the remote storefront service.
// Price is in integer minor currency units (cents).
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       []byte `json:"image"`
	Price       int64  `json:"price"`
}
