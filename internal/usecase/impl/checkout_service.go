package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"posterstore/config"
	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/domain/repository"
	"posterstore/internal/domain/service"
	"posterstore/internal/usecase"
	"posterstore/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface. The in-flight
// checkout lives only in memory; a restart while processing loses the pending
// order, matching the ephemeral confirmation flow. Only the recorded order
// history is durable.
type checkoutService struct {
	fx.In

	cartRepo    repository.CartRepository
	profileRepo repository.ProfileRepository
	orderRepo   repository.OrderRepository
	bus         service.CartEventBus
	cfg         *config.CheckoutConfig
	logger      *slog.Logger

	mu      sync.Mutex
	state   usecase.CheckoutState
	pending *entity.Order
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	profileRepo repository.ProfileRepository,
	orderRepo repository.OrderRepository,
	bus service.CartEventBus,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	checkoutCfg := cfg.Checkout
	if checkoutCfg == nil {
		checkoutCfg = &config.CheckoutConfig{
			ProcessingDelay: 1500 * time.Millisecond,
			ConfirmDelay:    2 * time.Second,
		}
	}

	return &checkoutService{
		cartRepo:    cartRepo,
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
		bus:         bus,
		cfg:         checkoutCfg,
		logger:      logger,
		state:       usecase.StateEditing,
	}
}

// Quote prices the current cart under the given shipping method.
func (srv *checkoutService) Quote(ctx context.Context, method entity.ShippingMethod) (*usecase.CheckoutQuote, error) {
	if !method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidShippingMethod, method.String())
	}

	items, err := srv.cartRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	subtotal := items.Subtotal()
	tax := items.Tax()

	return &usecase.CheckoutQuote{
		Subtotal: entity.Round2(subtotal),
		Tax:      entity.Round2(tax),
		Shipping: method.Fee(),
		Total:    entity.Round2(subtotal + tax + method.Fee()),
	}, nil
}

// PlaceOrder starts an asynchronous checkout. The cart must be non-empty and
// a profile must have been saved; failing either precondition leaves the cart
// and history untouched. The order is recorded and the cart cleared only
// after the processing delay elapses.
func (srv *checkoutService) PlaceOrder(ctx context.Context, method entity.ShippingMethod) (*usecase.CheckoutStatus, error) {
	if !method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidShippingMethod, method.String())
	}

	if _, err := srv.profileRepo.Get(ctx); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileRequired
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	items, err := srv.cartRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	order := &entity.Order{
		ID:     util.TimestampID(),
		Date:   time.Now(),
		Total:  entity.Round2(items.Subtotal() + items.Tax() + method.Fee()),
		Items:  items.Count(),
		Status: entity.OrderStatusPending,
	}

	srv.mu.Lock()
	if srv.state == usecase.StateProcessing {
		srv.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInProgress
	}
	srv.state = usecase.StateProcessing
	srv.pending = order
	srv.mu.Unlock()

	srv.logger.Info("Processing order", "orderID", order.ID, "total", order.Total, "method", method)

	time.AfterFunc(srv.cfg.ProcessingDelay, func() {
		srv.confirm(order)
	})

	return &usecase.CheckoutStatus{State: usecase.StateProcessing}, nil
}

// Status reports the state of the in-flight checkout, if any.
func (srv *checkoutService) Status(_ context.Context) (*usecase.CheckoutStatus, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	status := &usecase.CheckoutStatus{State: srv.state}
	if srv.state == usecase.StateConfirmed {
		status.Order = srv.pending
	}

	return status, nil
}

// confirm records the processed order, clears the cart and schedules the
// return to editing. Persistence failures here can only be logged; the
// caller's request finished when processing started.
func (srv *checkoutService) confirm(order *entity.Order) {
	ctx := context.Background()

	if err := srv.orderRepo.Append(ctx, order); err != nil {
		srv.logger.Error("Failed to record order", "orderID", order.ID, "error", err)
	}

	if err := srv.cartRepo.Clear(ctx); err != nil {
		srv.logger.Error("Failed to clear cart after checkout", "orderID", order.ID, "error", err)
	}

	if err := srv.bus.Publish(ctx, &service.CartEvent{Action: service.CartActionClear, Count: 0}); err != nil {
		srv.logger.Warn("Failed to publish cart event", "action", service.CartActionClear, "error", err)
	}

	srv.mu.Lock()
	srv.state = usecase.StateConfirmed
	srv.mu.Unlock()

	srv.logger.Info("Order confirmed", "orderID", order.ID)

	time.AfterFunc(srv.cfg.ConfirmDelay, func() {
		srv.mu.Lock()
		if srv.state == usecase.StateConfirmed && srv.pending == order {
			srv.state = usecase.StateEditing
			srv.pending = nil
		}
		srv.mu.Unlock()
	})
}
