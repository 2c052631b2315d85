package kv

import (
	"context"

	"posterstore/internal/domain/constants"
	"posterstore/internal/domain/repository"
	"posterstore/internal/infra/kvstore"
)

// favoriteRepository implements the repository.FavoriteRepository interface over the keyspace.
type favoriteRepository struct {
	store kvstore.Store
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(store kvstore.Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (repo *favoriteRepository) List(ctx context.Context) ([]string, error) {
	ids := []string{}
	if _, err := loadJSON(ctx, repo.store, constants.KeyFavorites, &ids); err != nil {
		return nil, err
	}

	return ids, nil
}

func (repo *favoriteRepository) Save(ctx context.Context, ids []string) error {
	return saveJSON(ctx, repo.store, constants.KeyFavorites, ids)
}
