package impl

import (
	"context"
	"log/slog"
	"math"

	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/domain/repository"
	"posterstore/internal/usecase"
	"posterstore/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	fx.In

	posterRepo repository.PosterRepository
	logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	posterRepo repository.PosterRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		posterRepo: posterRepo,
		logger:     logger,
	}
}

// CreatePoster appends a new poster with a generated timestamp ID. A missing
// image path falls back to the default artwork.
func (srv *adminService) CreatePoster(ctx context.Context, input *usecase.PosterInput) (*entity.Poster, error) {
	poster, err := posterFromInput(input)
	if err != nil {
		return nil, err
	}
	poster.ID = util.TimestampID()

	if err := srv.posterRepo.Create(ctx, poster); err != nil {
		return nil, errors.Wrap(err, "failed to create poster")
	}

	srv.logger.Info("Poster created", "posterID", poster.ID, "title", poster.Title)

	return poster, nil
}

// UpdatePoster overwrites the identified poster's fields, keeping its ID.
func (srv *adminService) UpdatePoster(ctx context.Context, id string, input *usecase.PosterInput) (*entity.Poster, error) {
	poster, err := posterFromInput(input)
	if err != nil {
		return nil, err
	}
	poster.ID = id

	if err := srv.posterRepo.Update(ctx, poster); err != nil {
		if errors.Is(err, repository.ErrPosterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPosterNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to update poster")
	}

	srv.logger.Info("Poster updated", "posterID", poster.ID)

	return poster, nil
}

// DeletePoster removes the identified poster from the catalog. Cart lines and
// favorites referencing it are left untouched.
func (srv *adminService) DeletePoster(ctx context.Context, id string) error {
	if err := srv.posterRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPosterNotFound) {
			return errors.Wrap(domainerrors.ErrPosterNotFound, id)
		}

		return errors.Wrap(err, "failed to delete poster")
	}

	srv.logger.Info("Poster deleted", "posterID", id)

	return nil
}

// posterFromInput validates and converts admin input into a poster entity.
func posterFromInput(input *usecase.PosterInput) (*entity.Poster, error) {
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPrice, "price must be a non-negative number")
	}

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategory, input.Category)
	}

	image := input.Image
	if image == "" {
		image = entity.DefaultPosterImage
	}

	return &entity.Poster{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Image:       image,
		Category:    category,
	}, nil
}
