package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutPhase describes where a checkout submission ended up.
type CheckoutPhase string

const (
	// PhaseEditing means validation rejected the form; the caller keeps the
	// typed field values and may resubmit.
	PhaseEditing CheckoutPhase = "editing"
	// PhaseSucceeded means the order was placed.
	PhaseSucceeded CheckoutPhase = "succeeded"
	// PhaseFailed means the remote call was rejected after validation
	// passed; the caller returns to editing.
	PhaseFailed CheckoutPhase = "failed"
)

// CheckoutInput is the transient checkout form state. It is validated on
// submission and discarded after navigation to the confirmation view.
type CheckoutInput struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Address       string               `json:"address"`
	City          string               `json:"city"`
	PostalCode    string               `json:"postalCode"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
}

// CheckoutOutput reports a placed order. OrderID drives navigation to the
// confirmation view.
type CheckoutOutput struct {
	OrderID int64         `json:"orderId"`
	Phase   CheckoutPhase `json:"phase"`
}

// CheckoutUsecase defines the checkout workflow.
type CheckoutUsecase interface {
	// Submit validates the form (all fields non-blank after trimming, then
	// email contains '@', then cart non-empty — in that order, failing on
	// the first violation) and issues exactly one remote checkout call.
	Submit(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error)
}
