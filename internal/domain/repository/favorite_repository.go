package repository

import "context"

// FavoriteRepository defines the operations for the favorites set, persisted
// as a JSON array of poster IDs.
type FavoriteRepository interface {
	// List retrieves the favorite poster IDs. A missing key yields an empty set.
	List(ctx context.Context) ([]string, error)

	// Save overwrites the favorites set.
	Save(ctx context.Context, ids []string) error
}
