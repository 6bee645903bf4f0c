package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/sensor"
	"storefront/internal/domain/service"
	"storefront/internal/infra/blobstore"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/realtime"
	sensorinfra "storefront/internal/infra/sensor"
	"storefront/internal/infra/spreadsheet"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		pubsub.Module,
		blobstore.Module,
		realtime.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
			spreadsheet.NewXLSXCodec,
			fx.Annotate(
				sensorinfra.NewLocationTracker,
				fx.As(new(service.LocationProvider), new(service.LocationFeed)),
			),
			fx.Annotate(
				sensorinfra.NewShakeDetector,
				fx.As(new(service.MotionProvider), new(service.MotionFeed)),
			),
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewRoutingService,
			impl.NewStoreService,
			impl.NewSensorService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewStoreHandler,
			handler.NewSensorHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sensor.NewShakeListener,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog loads the default catalog once storage is up
func seedCatalog(params seedParams) {
	if params.Config.Catalog == nil || !params.Config.Catalog.SeedOnStart {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			inserted, err := params.CatalogUC.SeedDefaultCatalog(ctx)
			if err != nil {
				return err
			}
			if inserted > 0 {
				params.Logger.Info("Default catalog seeded", slog.Int("products", inserted))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
