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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	fx.In

	profileRepo repository.ProfileRepository
	orderRepo   repository.OrderRepository
	receipts    service.ReceiptService
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	orderRepo repository.OrderRepository,
	receipts service.ReceiptService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
		receipts:    receipts,
		logger:      logger,
	}
}

// GetProfile returns the saved profile. A never-saved profile reads back as
// an empty one rather than an error.
func (srv *profileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := srv.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &entity.Profile{}, nil
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// SaveProfile overwrites the stored profile with the submitted fields.
func (srv *profileService) SaveProfile(ctx context.Context, input *usecase.ProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
	}

	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.logger.Debug("Profile saved")

	return profile, nil
}

// ListOrders returns the order history in stored order, oldest first.
func (srv *profileService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order by ID.
func (srv *profileService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// OrderReceipt renders a scannable PNG receipt for the order.
func (srv *profileService) OrderReceipt(ctx context.Context, id string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.receipts.GenerateOrderReceipt(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt")
	}

	return png, nil
}
