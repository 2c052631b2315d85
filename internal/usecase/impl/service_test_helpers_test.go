package impl

import (
	"io"
	"log/slog"
	"testing"

	"posterstore/internal/domain/repository"
	"posterstore/internal/domain/service"
	"posterstore/internal/infra/kvstore"
	"posterstore/internal/infra/persistence/kv"
	"posterstore/internal/infra/pubsub"
)

// testRepos bundles real repositories over a fresh in-memory store so the
// services are exercised against the same persistence path production uses.
type testRepos struct {
	posters   repository.PosterRepository
	favorites repository.FavoriteRepository
	cart      repository.CartRepository
	profiles  repository.ProfileRepository
	orders    repository.OrderRepository
	sessions  repository.SessionRepository
	bus       service.CartEventBus
	logger    *slog.Logger
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := pubsub.NewBus(logger)
	t.Cleanup(func() { _ = bus.Close() })

	return testRepos{
		posters:   kv.NewPosterRepository(store),
		favorites: kv.NewFavoriteRepository(store),
		cart:      kv.NewCartRepository(store),
		profiles:  kv.NewProfileRepository(store),
		orders:    kv.NewOrderRepository(store),
		sessions:  kv.NewSessionRepository(store),
		bus:       bus,
		logger:    logger,
	}
}
