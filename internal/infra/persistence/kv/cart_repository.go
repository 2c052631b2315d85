package kv

import (
	"context"

	"posterstore/internal/domain/constants"
	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/repository"
	"posterstore/internal/infra/kvstore"

	"github.com/pkg/errors"
)

// cartRepository implements the repository.CartRepository interface over the keyspace.
type cartRepository struct {
	store kvstore.Store
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store kvstore.Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (repo *cartRepository) Get(ctx context.Context) (entity.CartItems, error) {
	items := entity.CartItems{}
	if _, err := loadJSON(ctx, repo.store, constants.KeyCart, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (repo *cartRepository) Save(ctx context.Context, items entity.CartItems) error {
	return saveJSON(ctx, repo.store, constants.KeyCart, items)
}

func (repo *cartRepository) Clear(ctx context.Context) error {
	if err := repo.store.Delete(ctx, constants.KeyCart); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
