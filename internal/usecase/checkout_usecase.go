package usecase

import (
	"context"

	"posterstore/internal/domain/entity"
)

// CheckoutState tracks where an in-flight checkout stands.
type CheckoutState string

const (
	// StateEditing means no checkout is in flight.
	StateEditing CheckoutState = "editing"
	// StateProcessing means an order is being placed.
	StateProcessing CheckoutState = "processing"
	// StateConfirmed means the order was recorded and the cart cleared.
	StateConfirmed CheckoutState = "confirmed"
)

// CheckoutQuote is the priced breakdown for a shipping method.
type CheckoutQuote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// CheckoutStatus reports the current checkout state and, once confirmed,
// the resulting order.
type CheckoutStatus struct {
	State CheckoutState `json:"state"`
	Order *entity.Order `json:"order,omitempty"`
}

// CheckoutUsecase defines the interface for the order placement flow.
type CheckoutUsecase interface {
	// Quote prices the current cart under the given shipping method.
	Quote(ctx context.Context, method entity.ShippingMethod) (*CheckoutQuote, error)

	// PlaceOrder starts an asynchronous checkout for the current cart.
	// The order is recorded and the cart cleared only after the processing
	// delay elapses.
	PlaceOrder(ctx context.Context, method entity.ShippingMethod) (*CheckoutStatus, error)

	// Status reports the state of the in-flight checkout, if any.
	Status(ctx context.Context) (*CheckoutStatus, error)
}
