package kv

import (
	"context"

	"posterstore/internal/domain/constants"
	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/repository"
	"posterstore/internal/infra/kvstore"

	"github.com/pkg/errors"
)

// sessionRepository implements the repository.SessionRepository interface over the keyspace.
type sessionRepository struct {
	store kvstore.Store
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store kvstore.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (repo *sessionRepository) GetRole(ctx context.Context) (entity.Role, error) {
	var role entity.Role
	found, err := loadJSON(ctx, repo.store, constants.KeyUserRole, &role)
	if err != nil {
		return "", err
	}
	if !found || !role.IsValid() {
		return "", repository.ErrSessionNotFound
	}

	return role, nil
}

func (repo *sessionRepository) SaveRole(ctx context.Context, role entity.Role) error {
	return saveJSON(ctx, repo.store, constants.KeyUserRole, role)
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	if err := repo.store.Delete(ctx, constants.KeyUserRole); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
