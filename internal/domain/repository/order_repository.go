package repository

import (
	"context"
	"errors"

	"posterstore/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order ID does not exist in the history.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for the order history, which is
// append-only; orders are never updated or deleted.
type OrderRepository interface {
	// List retrieves all past orders. A missing key yields an empty history.
	List(ctx context.Context) ([]entity.Order, error)

	// FindByID retrieves a single order by its ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Append adds an order to the history.
	Append(ctx context.Context, order *entity.Order) error
}
