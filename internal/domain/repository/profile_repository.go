package repository

import (
	"context"
	"errors"

	"posterstore/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile record has been saved yet.
// Checkout uses it as its only explicit precondition.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for the single saved profile record.
type ProfileRepository interface {
	// Get retrieves the saved profile, or ErrProfileNotFound when absent.
	Get(ctx context.Context) (*entity.Profile, error)

	// Save overwrites the whole profile record.
	Save(ctx context.Context, profile *entity.Profile) error
}
