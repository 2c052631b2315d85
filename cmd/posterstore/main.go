package main

import (
	"context"
	"log/slog"
	"os"

	"posterstore/config"
	"posterstore/internal/delivery"
	"posterstore/internal/delivery/http"
	"posterstore/internal/delivery/http/middleware"
	"posterstore/internal/delivery/http/router/handler"
	"posterstore/internal/domain/service"
	"posterstore/internal/infra/auth"
	"posterstore/internal/infra/kvstore"
	logs "posterstore/internal/infra/log"
	"posterstore/internal/infra/persistence/kv"
	"posterstore/internal/infra/pubsub"
	"posterstore/internal/infra/qrcode"
	"posterstore/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kvstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewPosterRepository,
			kv.NewFavoriteRepository,
			kv.NewCartRepository,
			kv.NewProfileRepository,
			kv.NewOrderRepository,
			kv.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewCartEventBus,
			newReceiptService,
		),
	)
}

// newReceiptService creates the receipt QR service with dependency injection
func newReceiptService(cfg *config.Config) service.ReceiptService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewReceiptService(256, "M")
	}

	return qrcode.NewReceiptService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewAdminService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewProfileService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewAdminHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewProfileHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
