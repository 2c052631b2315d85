package repository

import (
	"context"

	"posterstore/internal/domain/entity"
)

// CartRepository defines the operations for cart persistence. The cart is a
// single JSON array value; callers read the whole cart, mutate it and save it
// back.
type CartRepository interface {
	// Get retrieves the cart contents. A missing key yields an empty cart.
	Get(ctx context.Context) (entity.CartItems, error)

	// Save overwrites the cart contents.
	Save(ctx context.Context, items entity.CartItems) error

	// Clear removes the cart key entirely.
	Clear(ctx context.Context) error
}
