// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/domain/repository"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultPosters is the catalog seeded on first browse of an empty store.
var defaultPosters = []entity.Poster{
	{
		ID:          "1",
		Title:       "Sunset Vibes",
		Description: "Beautiful sunset landscape",
		Price:       25,
		Image:       "/sunset-poster.jpg",
		Category:    entity.CategoryLandscape,
	},
	{
		ID:          "2",
		Title:       "Urban Dreams",
		Description: "Modern city architecture",
		Price:       30,
		Image:       "/urban-city-poster.jpg",
		Category:    entity.CategoryUrban,
	},
	{
		ID:          "3",
		Title:       "Nature Call",
		Description: "Forest and mountains",
		Price:       28,
		Image:       "/nature-forest-mountains-poster.jpg",
		Category:    entity.CategoryLandscape,
	},
	{
		ID:          "4",
		Title:       "Abstract Art",
		Description: "Contemporary abstract design",
		Price:       35,
		Image:       "/abstract-colorful-modern-art.jpg",
		Category:    entity.CategoryArt,
	},
	{
		ID:          "5",
		Title:       "Cosmic Journey",
		Description: "Space and stars",
		Price:       32,
		Image:       "/space-cosmos-stars-universe.jpg",
		Category:    entity.CategorySpace,
	},
	{
		ID:          "6",
		Title:       "Minimalist Zen",
		Description: "Simple and peaceful",
		Price:       22,
		Image:       "/minimalist-zen-simple-design.jpg",
		Category:    entity.CategoryArt,
	},
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	fx.In

	posterRepo   repository.PosterRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	posterRepo repository.PosterRepository,
	favoriteRepo repository.FavoriteRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		posterRepo:   posterRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// ListPosters returns the catalog filtered by category, seeding the default
// catalog when the store has never held one. An empty stored catalog stays
// empty; only a missing one is seeded.
func (srv *catalogService) ListPosters(ctx context.Context, category string) ([]entity.Poster, error) {
	posters, err := srv.seededCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" || category == entity.CategoryAll {
		return posters, nil
	}

	filtered := make([]entity.Poster, 0, len(posters))
	for _, p := range posters {
		if string(p.Category) == category {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

// GetPoster retrieves a single poster by ID.
func (srv *catalogService) GetPoster(ctx context.Context, id string) (*entity.Poster, error) {
	if _, err := srv.seededCatalog(ctx); err != nil {
		return nil, err
	}

	poster, err := srv.posterRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPosterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPosterNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find poster")
	}

	return poster, nil
}

// ListFavorites returns the favorited poster IDs.
func (srv *catalogService) ListFavorites(ctx context.Context) ([]string, error) {
	favorites, err := srv.favoriteRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// ToggleFavorite flips set membership for the poster ID and returns whether
// the poster is now favorited.
func (srv *catalogService) ToggleFavorite(ctx context.Context, posterID string) (bool, error) {
	srv.logger.Debug("Toggling favorite", "posterID", posterID)

	favorites, err := srv.favoriteRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list favorites")
	}

	updated := make([]string, 0, len(favorites)+1)
	favorited := true
	for _, id := range favorites {
		if id == posterID {
			favorited = false

			continue
		}
		updated = append(updated, id)
	}
	if favorited {
		updated = append(updated, posterID)
	}

	if err := srv.favoriteRepo.Save(ctx, updated); err != nil {
		return false, errors.Wrap(err, "failed to save favorites")
	}

	return favorited, nil
}

// seededCatalog loads the catalog, writing the default one if the store has
// never held a catalog key.
func (srv *catalogService) seededCatalog(ctx context.Context) ([]entity.Poster, error) {
	exists, err := srv.posterRepo.Exists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to probe catalog")
	}

	if !exists {
		srv.logger.Info("Seeding default catalog", "count", len(defaultPosters))

		seed := make([]entity.Poster, len(defaultPosters))
		copy(seed, defaultPosters)
		if err := srv.posterRepo.Replace(ctx, seed); err != nil {
			return nil, errors.Wrap(err, "failed to seed catalog")
		}

		return seed, nil
	}

	posters, err := srv.posterRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posters")
	}

	return posters, nil
}
