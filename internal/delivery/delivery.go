// Package delivery defines the interface every transport server implements.
package delivery

import "context"

// Delivery is a serving transport (HTTP today). Servers block in Serve and
// shut down through their fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
