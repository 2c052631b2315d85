// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"posterstore/internal/domain/entity"
)

// ErrPosterNotFound is a domain-specific error returned when a poster is not found.
var ErrPosterNotFound = errors.New("poster not found")

// PosterRepository defines the standard operations for catalog persistence.
// The whole catalog is one value; every mutation is a read-modify-write of the
// full list. The application layer depends on this interface, not the
// concrete implementation.
type PosterRepository interface {
	// List retrieves the full catalog. A missing key yields an empty list.
	List(ctx context.Context) ([]entity.Poster, error)

	// FindByID retrieves a single poster by its ID.
	FindByID(ctx context.Context, id string) (*entity.Poster, error)

	// Exists reports whether the catalog key has ever been written.
	// Browsing seeds the default catalog only when it has not.
	Exists(ctx context.Context) (bool, error)

	// Create appends a new poster to the catalog.
	Create(ctx context.Context, poster *entity.Poster) error

	// Update replaces the poster with the matching ID.
	Update(ctx context.Context, poster *entity.Poster) error

	// Delete removes exactly the poster with the given ID.
	Delete(ctx context.Context, id string) error

	// Replace overwrites the whole catalog.
	Replace(ctx context.Context, posters []entity.Poster) error
}
