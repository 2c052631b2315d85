package impl

import (
	"context"
	"log/slog"

	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/domain/repository"
	"posterstore/internal/domain/service"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	fx.In

	cartRepo   repository.CartRepository
	posterRepo repository.PosterRepository
	bus        service.CartEventBus
	logger     *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	posterRepo repository.PosterRepository,
	bus service.CartEventBus,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:   cartRepo,
		posterRepo: posterRepo,
		bus:        bus,
		logger:     logger,
	}
}

// GetCart returns the current cart with derived totals.
func (srv *cartService) GetCart(ctx context.Context) (*usecase.CartView, error) {
	items, err := srv.cartRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cartView(items), nil
}

// AddToCart adds one unit of the poster, snapshotting its title, price and
// image. Adding an ID already in the cart increments that line instead of
// creating a duplicate.
func (srv *cartService) AddToCart(ctx context.Context, posterID string) (*usecase.CartView, error) {
	poster, err := srv.posterRepo.FindByID(ctx, posterID)
	if err != nil {
		if errors.Is(err, repository.ErrPosterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPosterNotFound, posterID)
		}

		return nil, errors.Wrap(err, "failed to find poster")
	}

	items, err := srv.cartRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	merged := false
	for i := range items {
		if items[i].ID == posterID {
			items[i].Quantity++
			merged = true

			break
		}
	}
	if !merged {
		items = append(items, entity.CartItem{
			ID:       poster.ID,
			Title:    poster.Title,
			Price:    poster.Price,
			Image:    poster.Image,
			Quantity: 1,
		})
	}

	if err := srv.cartRepo.Save(ctx, items); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.publish(ctx, service.CartActionAdd, items.Count())

	return cartView(items), nil
}

// SetQuantity sets the line quantity for the poster. A quantity of zero or
// below removes the line.
func (srv *cartService) SetQuantity(ctx context.Context, posterID string, quantity int) (*usecase.CartView, error) {
	if quantity <= 0 {
		return srv.RemoveItem(ctx, posterID)
	}

	items, err := srv.cartRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	found := false
	for i := range items {
		if items[i].ID == posterID {
			items[i].Quantity = quantity
			found = true

			break
		}
	}
	if !found {
		return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, posterID)
	}

	if err := srv.cartRepo.Save(ctx, items); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.publish(ctx, service.CartActionUpdate, items.Count())

	return cartView(items), nil
}

// RemoveItem removes the line for the poster. Removing an absent ID is a
// no-op on the stored cart.
func (srv *cartService) RemoveItem(ctx context.Context, posterID string) (*usecase.CartView, error) {
	items, err := srv.cartRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	updated := make(entity.CartItems, 0, len(items))
	for _, item := range items {
		if item.ID == posterID {
			continue
		}
		updated = append(updated, item)
	}

	if err := srv.cartRepo.Save(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.publish(ctx, service.CartActionRemove, updated.Count())

	return cartView(updated), nil
}

// publish fires a cart-changed event; delivery is best effort.
func (srv *cartService) publish(ctx context.Context, action string, count int) {
	if err := srv.bus.Publish(ctx, &service.CartEvent{Action: action, Count: count}); err != nil {
		srv.logger.Warn("Failed to publish cart event", "action", action, "error", err)
	}
}

// cartView derives the display totals for a cart.
func cartView(items entity.CartItems) *usecase.CartView {
	if items == nil {
		items = entity.CartItems{}
	}

	return &usecase.CartView{
		Items:    items,
		Subtotal: entity.Round2(items.Subtotal()),
		Tax:      entity.Round2(items.Tax()),
		Count:    items.Count(),
	}
}
