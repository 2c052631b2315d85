package usecase

import (
	"context"

	"posterstore/internal/domain/entity"
)

// ProfileInput carries the editable profile fields. Every field is
// optional; a profile can be saved partially filled.
type ProfileInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// ProfileUsecase defines the interface for the user profile and order history.
type ProfileUsecase interface {
	// GetProfile returns the saved profile, or an empty one if none exists.
	GetProfile(ctx context.Context) (*entity.Profile, error)

	// SaveProfile overwrites the stored profile.
	SaveProfile(ctx context.Context, input *ProfileInput) (*entity.Profile, error)

	// ListOrders returns the order history in stored order, oldest first.
	ListOrders(ctx context.Context) ([]entity.Order, error)

	// GetOrder returns a single order by ID.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// OrderReceipt renders a scannable PNG receipt for the order.
	OrderReceipt(ctx context.Context, id string) ([]byte, error)
}
