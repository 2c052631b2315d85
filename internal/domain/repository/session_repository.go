package repository

import (
	"context"
	"errors"

	"posterstore/internal/domain/entity"
)

// ErrSessionNotFound is returned when no role has been stored, meaning the
// visitor is not logged in.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for the stored role flag.
type SessionRepository interface {
	// GetRole retrieves the stored role, or ErrSessionNotFound when absent.
	GetRole(ctx context.Context) (entity.Role, error)

	// SaveRole overwrites the stored role.
	SaveRole(ctx context.Context, role entity.Role) error

	// Clear removes the stored role (logout).
	Clear(ctx context.Context) error
}
