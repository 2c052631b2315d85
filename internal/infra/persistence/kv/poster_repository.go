package kv

import (
	"context"

	"posterstore/internal/domain/constants"
	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/repository"
	"posterstore/internal/infra/kvstore"

	"github.com/pkg/errors"
)

// posterRepository implements the repository.PosterRepository interface over the keyspace.
type posterRepository struct {
	store kvstore.Store
}

// NewPosterRepository is the constructor for posterRepository.
func NewPosterRepository(store kvstore.Store) repository.PosterRepository {
	return &posterRepository{store: store}
}

func (repo *posterRepository) List(ctx context.Context) ([]entity.Poster, error) {
	posters := []entity.Poster{}
	if _, err := loadJSON(ctx, repo.store, constants.KeyPosters, &posters); err != nil {
		return nil, err
	}

	return posters, nil
}

func (repo *posterRepository) FindByID(ctx context.Context, id string) (*entity.Poster, error) {
	posters, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posters {
		if posters[i].ID == id {
			return &posters[i], nil
		}
	}

	return nil, repository.ErrPosterNotFound
}

func (repo *posterRepository) Exists(ctx context.Context) (bool, error) {
	_, err := repo.store.Get(ctx, constants.KeyPosters)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to probe catalog key")
	}

	return true, nil
}

func (repo *posterRepository) Create(ctx context.Context, poster *entity.Poster) error {
	posters, err := repo.List(ctx)
	if err != nil {
		return err
	}

	posters = append(posters, *poster)

	return saveJSON(ctx, repo.store, constants.KeyPosters, posters)
}

func (repo *posterRepository) Update(ctx context.Context, poster *entity.Poster) error {
	posters, err := repo.List(ctx)
	if err != nil {
		return err
	}

	for i := range posters {
		if posters[i].ID == poster.ID {
			posters[i] = *poster

			return saveJSON(ctx, repo.store, constants.KeyPosters, posters)
		}
	}

	return repository.ErrPosterNotFound
}

func (repo *posterRepository) Delete(ctx context.Context, id string) error {
	posters, err := repo.List(ctx)
	if err != nil {
		return err
	}

	remaining := make([]entity.Poster, 0, len(posters))
	for _, p := range posters {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(posters) {
		return repository.ErrPosterNotFound
	}

	return saveJSON(ctx, repo.store, constants.KeyPosters, remaining)
}

func (repo *posterRepository) Replace(ctx context.Context, posters []entity.Poster) error {
	return saveJSON(ctx, repo.store, constants.KeyPosters, posters)
}
