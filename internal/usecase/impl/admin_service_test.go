package impl

import (
	"context"
	"math"
	"testing"

	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T) (usecase.AdminUsecase, testRepos) {
	repos := newTestRepos(t)
	svc := NewAdminService(repos.posters, repos.logger)

	return svc, repos
}

func validPosterInput() *usecase.PosterInput {
	return &usecase.PosterInput{
		Title:       "Ocean Depths",
		Description: "Deep sea photography",
		Price:       27.5,
		Category:    "landscape",
	}
}

func TestAdminService_CreatePoster(t *testing.T) {
	svc, repos := createTestAdminService(t)
	ctx := context.Background()

	poster, err := svc.CreatePoster(ctx, validPosterInput())
	require.NoError(t, err)
	assert.NotEmpty(t, poster.ID)
	assert.Equal(t, entity.DefaultPosterImage, poster.Image)
	assert.Equal(t, entity.CategoryLandscape, poster.Category)

	stored, err := repos.posters.FindByID(ctx, poster.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ocean Depths", stored.Title)
}

func TestAdminService_CreatePoster_GeneratesUniqueIDs(t *testing.T) {
	svc, _ := createTestAdminService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 5 {
		poster, err := svc.CreatePoster(ctx, validPosterInput())
		require.NoError(t, err)
		assert.False(t, seen[poster.ID], "duplicate poster ID %s", poster.ID)
		seen[poster.ID] = true
	}
}

func TestAdminService_CreatePoster_RejectsInvalidPrice(t *testing.T) {
	svc, _ := createTestAdminService(t)
	ctx := context.Background()

	for name, price := range map[string]float64{
		"negative": -1,
		"nan":      math.NaN(),
		"infinite": math.Inf(1),
	} {
		input := validPosterInput()
		input.Price = price

		_, err := svc.CreatePoster(ctx, input)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice), name)
	}
}

func TestAdminService_CreatePoster_RejectsUnknownCategory(t *testing.T) {
	svc, _ := createTestAdminService(t)

	input := validPosterInput()
	input.Category = "all"

	_, err := svc.CreatePoster(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}

func TestAdminService_UpdatePoster(t *testing.T) {
	svc, _ := createTestAdminService(t)
	ctx := context.Background()

	created, err := svc.CreatePoster(ctx, validPosterInput())
	require.NoError(t, err)

	input := validPosterInput()
	input.Title = "Ocean Depths II"
	input.Price = 33

	updated, err := svc.UpdatePoster(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ocean Depths II", updated.Title)
	assert.Equal(t, 33.0, updated.Price)
}

func TestAdminService_UpdatePoster_NotFound(t *testing.T) {
	svc, _ := createTestAdminService(t)

	_, err := svc.UpdatePoster(context.Background(), "missing", validPosterInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPosterNotFound))
}

func TestAdminService_DeletePoster_RemovesExactlyOne(t *testing.T) {
	svc, repos := createTestAdminService(t)
	ctx := context.Background()

	first, err := svc.CreatePoster(ctx, validPosterInput())
	require.NoError(t, err)
	second, err := svc.CreatePoster(ctx, validPosterInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePoster(ctx, first.ID))

	posters, err := repos.posters.List(ctx)
	require.NoError(t, err)
	require.Len(t, posters, 1)
	assert.Equal(t, second.ID, posters[0].ID)

	err = svc.DeletePoster(ctx, first.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPosterNotFound))
}
