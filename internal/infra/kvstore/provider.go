package kvstore

import (
	"context"
	"log/slog"

	"posterstore/config"
	"posterstore/internal/domain/constants"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the Store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates a Store based on configuration
func New(params StoreParams) (Store, error) {
	cfg := params.Config.Store
	logger := params.Logger

	// Default to an in-memory keyspace when nothing is configured.
	if cfg == nil || cfg.Driver == "" {
		logger.Info("Store not configured, using in-memory keyspace")

		return hooked(params.Lc, NewMemoryStore()), nil
	}

	switch cfg.Driver {
	case constants.StoreDriverMemory:
		logger.Info("Using in-memory keyspace store")

		return hooked(params.Lc, NewMemoryStore()), nil

	case constants.StoreDriverSQLite:
		logger.Info("Using sqlite keyspace store", slog.String("path", cfg.Path))

		store, err := NewSQLiteStore(cfg.Path, logger, params.Config)
		if err != nil {
			return nil, err
		}

		return hooked(params.Lc, store), nil

	case constants.StoreDriverBlob:
		logger.Info("Using blob keyspace store", slog.String("bucketUrl", cfg.BucketURL))

		store, err := NewBlobStore(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}

		return hooked(params.Lc, store), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}
}

func hooked(lc fx.Lifecycle, store Store) Store {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store
}
