package kv

import (
	"context"

	"posterstore/internal/domain/constants"
	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/repository"
	"posterstore/internal/infra/kvstore"
)

// profileRepository implements the repository.ProfileRepository interface over the keyspace.
type profileRepository struct {
	store kvstore.Store
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store kvstore.Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	found, err := loadJSON(ctx, repo.store, constants.KeyProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	return saveJSON(ctx, repo.store, constants.KeyProfile, profile)
}
