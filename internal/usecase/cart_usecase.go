package usecase

import (
	"context"

	"posterstore/internal/domain/entity"
)

// CartView is the cart together with its derived totals.
type CartView struct {
	Items    entity.CartItems `json:"items"`
	Subtotal float64          `json:"subtotal"`
	Tax      float64          `json:"tax"`
	Count    int              `json:"count"`
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	// GetCart returns the current cart with derived totals.
	GetCart(ctx context.Context) (*CartView, error)

	// AddToCart adds one unit of the poster, merging with an existing line.
	AddToCart(ctx context.Context, posterID string) (*CartView, error)

	// SetQuantity sets the line quantity; zero or below removes the line.
	SetQuantity(ctx context.Context, posterID string, quantity int) (*CartView, error)

	// RemoveItem removes the line for the poster.
	RemoveItem(ctx context.Context, posterID string) (*CartView, error)
}
