package impl

import (
	"context"
	"testing"
	"time"

	"posterstore/config"
	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/domain/service"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCheckoutService(t *testing.T) (usecase.CheckoutUsecase, testRepos) {
	repos := newTestRepos(t)
	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{
			ProcessingDelay: 10 * time.Millisecond,
			ConfirmDelay:    40 * time.Millisecond,
		},
	}
	svc := NewCheckoutService(repos.cart, repos.profiles, repos.orders, repos.bus, cfg, repos.logger)

	return svc, repos
}

func seedCheckoutFixtures(t *testing.T, repos testRepos) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repos.profiles.Save(ctx, &entity.Profile{
		Name:    "Ada Shopper",
		Email:   "ada@example.com",
		Address: "1 Poster Lane",
	}))
	require.NoError(t, repos.cart.Save(ctx, entity.CartItems{
		{ID: "p1", Title: "Sunset Vibes", Price: 25, Quantity: 2},
	}))
}

func waitForState(t *testing.T, svc usecase.CheckoutUsecase, want usecase.CheckoutState) *usecase.CheckoutStatus {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		status, err := svc.Status(context.Background())
		require.NoError(t, err)
		if status.State == want {
			return status
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("checkout never reached state %s", want)

	return nil
}

func TestCheckoutService_Quote(t *testing.T) {
	svc, repos := createTestCheckoutService(t)
	ctx := context.Background()

	require.NoError(t, repos.cart.Save(ctx, entity.CartItems{
		{ID: "p1", Title: "Sunset Vibes", Price: 25, Quantity: 2},
	}))

	quote, err := svc.Quote(ctx, entity.ShippingStandard)
	require.NoError(t, err)
	assert.Equal(t, 50.0, quote.Subtotal)
	assert.Equal(t, 5.0, quote.Tax)
	assert.Equal(t, 5.0, quote.Shipping)
	assert.Equal(t, 60.0, quote.Total)

	quote, err = svc.Quote(ctx, entity.ShippingExpress)
	require.NoError(t, err)
	assert.Equal(t, 15.0, quote.Shipping)
	assert.Equal(t, 70.0, quote.Total)
}

func TestCheckoutService_Quote_InvalidMethod(t *testing.T) {
	svc, _ := createTestCheckoutService(t)

	_, err := svc.Quote(context.Background(), "overnight")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidShippingMethod))
}

func TestCheckoutService_PlaceOrder_RequiresProfile(t *testing.T) {
	svc, repos := createTestCheckoutService(t)
	ctx := context.Background()

	cart := entity.CartItems{{ID: "p1", Title: "Sunset Vibes", Price: 25, Quantity: 2}}
	require.NoError(t, repos.cart.Save(ctx, cart))

	_, err := svc.PlaceOrder(ctx, entity.ShippingStandard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileRequired))

	// A rejected checkout must leave the cart and history untouched.
	items, err := repos.cart.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart, items)

	orders, err := repos.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutService_PlaceOrder_RequiresNonEmptyCart(t *testing.T) {
	svc, repos := createTestCheckoutService(t)
	ctx := context.Background()

	require.NoError(t, repos.profiles.Save(ctx, &entity.Profile{Name: "Ada Shopper"}))

	_, err := svc.PlaceOrder(ctx, entity.ShippingExpress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_PlaceOrder_ConfirmsAndClearsCart(t *testing.T) {
	svc, repos := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutFixtures(t, repos)

	ch, cancel := repos.bus.Subscribe()
	defer cancel()

	status, err := svc.PlaceOrder(ctx, entity.ShippingStandard)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateProcessing, status.State)

	// Nothing is recorded until the processing delay elapses.
	orders, err := repos.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	confirmed := waitForState(t, svc, usecase.StateConfirmed)
	require.NotNil(t, confirmed.Order)
	assert.Equal(t, 60.0, confirmed.Order.Total)
	assert.Equal(t, 2, confirmed.Order.Items)
	assert.Equal(t, entity.OrderStatusPending, confirmed.Order.Status)

	orders, err = repos.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, confirmed.Order.ID, orders[0].ID)

	items, err := repos.cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	event := drainCartEvent(t, ch)
	assert.Equal(t, service.CartActionClear, event.Action)
	assert.Equal(t, 0, event.Count)

	// After the confirmation window the flow resets for the next order.
	waitForState(t, svc, usecase.StateEditing)
}

func TestCheckoutService_PlaceOrder_RejectsConcurrentCheckout(t *testing.T) {
	svc, repos := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutFixtures(t, repos)

	_, err := svc.PlaceOrder(ctx, entity.ShippingStandard)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, entity.ShippingExpress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutInProgress))

	waitForState(t, svc, usecase.StateEditing)
}
