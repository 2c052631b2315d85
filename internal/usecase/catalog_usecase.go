// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"posterstore/internal/domain/entity"
)

// CatalogUsecase defines the interface for catalog browsing and favorites.
type CatalogUsecase interface {
	// ListPosters returns the catalog filtered by category. The filter is an
	// exact string match; "all" (or empty) returns everything. The first
	// browse of an untouched keyspace seeds the default catalog.
	ListPosters(ctx context.Context, category string) ([]entity.Poster, error)

	// GetPoster returns a single poster by ID.
	GetPoster(ctx context.Context, id string) (*entity.Poster, error)

	// ListFavorites returns the favorited poster IDs.
	ListFavorites(ctx context.Context) ([]string, error)

	// ToggleFavorite flips set membership for the ID and reports the new state.
	ToggleFavorite(ctx context.Context, posterID string) (bool, error)
}
