package impl

import (
	"context"
	"testing"
	"time"

	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/domain/service"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCartService(t *testing.T) (usecase.CartUsecase, testRepos) {
	repos := newTestRepos(t)
	require.NoError(t, repos.posters.Replace(context.Background(), []entity.Poster{
		{ID: "p1", Title: "Sunset Vibes", Price: 25, Image: entity.DefaultPosterImage, Category: entity.CategoryLandscape},
		{ID: "p2", Title: "Urban Dreams", Price: 30, Image: entity.DefaultPosterImage, Category: entity.CategoryUrban},
	}))
	svc := NewCartService(repos.cart, repos.posters, repos.bus, repos.logger)

	return svc, repos
}

func drainCartEvent(t *testing.T, ch <-chan service.CartEvent) service.CartEvent {
	t.Helper()

	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for cart event")

		return service.CartEvent{}
	}
}

func TestCartService_AddToCart_MergesExistingLine(t *testing.T) {
	svc, _ := createTestCartService(t)
	ctx := context.Background()

	view, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = svc.AddToCart(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 2, view.Count)
}

func TestCartService_AddToCart_UnknownPoster(t *testing.T) {
	svc, _ := createTestCartService(t)

	_, err := svc.AddToCart(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPosterNotFound))
}

func TestCartService_Totals(t *testing.T) {
	svc, _ := createTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)
	view, err := svc.SetQuantity(ctx, "p1", 2)
	require.NoError(t, err)

	assert.Equal(t, 50.0, view.Subtotal)
	assert.Equal(t, 5.0, view.Tax)
	assert.Equal(t, 2, view.Count)
}

func TestCartService_SetQuantity_ZeroRemovesLine(t *testing.T) {
	svc, _ := createTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "p2")
	require.NoError(t, err)

	view, err := svc.SetQuantity(ctx, "p1", 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p2", view.Items[0].ID)
}

func TestCartService_SetQuantity_MissingLine(t *testing.T) {
	svc, _ := createTestCartService(t)

	_, err := svc.SetQuantity(context.Background(), "p1", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveItem_AbsentIDIsNoOp(t *testing.T) {
	svc, _ := createTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p1", view.Items[0].ID)
}

func TestCartService_SnapshotSurvivesCatalogDelete(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)

	// Deleting the poster must not disturb the snapshotted cart line.
	require.NoError(t, repos.posters.Delete(ctx, "p1"))

	view, err := svc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Sunset Vibes", view.Items[0].Title)
	assert.Equal(t, 25.0, view.Items[0].Price)
}

func TestCartService_PublishesEvents(t *testing.T) {
	svc, repos := createTestCartService(t)
	ctx := context.Background()

	ch, cancel := repos.bus.Subscribe()
	defer cancel()

	_, err := svc.AddToCart(ctx, "p1")
	require.NoError(t, err)
	event := drainCartEvent(t, ch)
	assert.Equal(t, service.CartActionAdd, event.Action)
	assert.Equal(t, 1, event.Count)

	_, err = svc.SetQuantity(ctx, "p1", 4)
	require.NoError(t, err)
	event = drainCartEvent(t, ch)
	assert.Equal(t, service.CartActionUpdate, event.Action)
	assert.Equal(t, 4, event.Count)

	_, err = svc.RemoveItem(ctx, "p1")
	require.NoError(t, err)
	event = drainCartEvent(t, ch)
	assert.Equal(t, service.CartActionRemove, event.Action)
	assert.Equal(t, 0, event.Count)
}
