package kv

import (
	"context"
	"testing"

	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/repository"
	"posterstore/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosterRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewPosterRepository(kvstore.NewMemoryStore())

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	posters, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posters)

	poster := &entity.Poster{ID: "1700000000000", Title: "Sunset Vibes", Price: 25, Category: entity.CategoryLandscape}
	require.NoError(t, repo.Create(ctx, poster))
	require.NoError(t, repo.Create(ctx, &entity.Poster{ID: "1700000000001", Title: "Urban Dreams", Price: 30, Category: entity.CategoryUrban}))

	exists, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindByID(ctx, "1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "Sunset Vibes", found.Title)

	poster.Price = 27.5
	require.NoError(t, repo.Update(ctx, poster))
	found, err = repo.FindByID(ctx, "1700000000000")
	require.NoError(t, err)
	assert.InEpsilon(t, 27.5, found.Price, 1e-9)

	// Delete removes exactly that ID and leaves the rest unchanged.
	require.NoError(t, repo.Delete(ctx, "1700000000000"))
	posters, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posters, 1)
	assert.Equal(t, "1700000000001", posters[0].ID)

	err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrPosterNotFound)

	err = repo.Update(ctx, &entity.Poster{ID: "missing"})
	assert.ErrorIs(t, err, repository.ErrPosterNotFound)
}

func TestCartRepository_SaveAndClear(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(kvstore.NewMemoryStore())

	items, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, repo.Save(ctx, entity.CartItems{
		{ID: "1", Title: "Sunset Vibes", Price: 25, Quantity: 2},
	}))

	items, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	require.NoError(t, repo.Clear(ctx))
	items, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProfileRepository_MissingThenSaved(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(kvstore.NewMemoryStore())

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	require.NoError(t, repo.Save(ctx, &entity.Profile{Name: "Jane Doe", Email: "jane@example.com"}))

	profile, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
}

func TestOrderRepository_AppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(kvstore.NewMemoryStore())

	require.NoError(t, repo.Append(ctx, &entity.Order{ID: "1", Total: 60, Items: 2, Status: entity.OrderStatusPending}))
	require.NoError(t, repo.Append(ctx, &entity.Order{ID: "2", Total: 70, Items: 3, Status: entity.OrderStatusPending}))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, "2", orders[1].ID)

	order, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.InEpsilon(t, 70.0, order.Total, 1e-9)

	_, err = repo.FindByID(ctx, "3")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestSessionRepository_RoleLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(kvstore.NewMemoryStore())

	_, err := repo.GetRole(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, repo.SaveRole(ctx, entity.RoleAdmin))

	role, err := repo.GetRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.GetRole(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
