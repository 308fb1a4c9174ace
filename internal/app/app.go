// Package app holds the fx wiring shared by the foodcart binaries.
package app

import (
	"context"
	"log/slog"
	"os"

	"foodcart/config"
	"foodcart/internal/delivery"
	"foodcart/internal/infra/auth"
	"foodcart/internal/infra/geocoder"
	logs "foodcart/internal/infra/log"
	"foodcart/internal/infra/persistence/postgres"
	"foodcart/internal/infra/pubsub"
	"foodcart/internal/usecase/impl"

	"go.uber.org/fx"
)

// Infra provides the config and its sections, the logger, the root context and the database.
func Infra() fx.Option {
	return fx.Provide(
		config.New,
		func(cfg *config.Config) *config.GeocoderConfig {
			return cfg.Geocoder
		},
		func(cfg *config.Config) *config.MatchingConfig {
			return cfg.Matching
		},
		logs.New,
		context.Background,
		postgres.New,
	)
}

// Repositories provides the gorm backed repositories.
func Repositories() fx.Option {
	return fx.Provide(
		postgres.NewGeocodeRepository,
		postgres.NewOrderRepository,
		postgres.NewRestaurantRepository,
		postgres.NewMenuItemRepository,
	)
}

// Services provides the geocoding provider, the refresh publisher and the token service.
func Services() fx.Option {
	return fx.Options(
		geocoder.Module,
		pubsub.Module,
		fx.Provide(auth.NewJWTService),
	)
}

// Usecases provides geocoding, matching and the catalog views.
func Usecases() fx.Option {
	return fx.Provide(
		impl.NewGeocodeService,
		impl.NewMatchingService,
		impl.NewCatalogService,
	)
}

// Deliveries registers servers in the group started by Serve.
func Deliveries(constructors ...any) fx.Option {
	annotated := make([]any, 0, len(constructors))
	for _, constructor := range constructors {
		annotated = append(annotated, fx.Annotate(constructor, fx.ResultTags(`group:"deliveries"`)))
	}

	return fx.Provide(annotated...)
}

// ServeParams holds the deliveries to start.
type ServeParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// Serve runs every delivery in its own goroutine. A delivery that fails shuts the whole app down
// so the OnStop hooks still run.
func Serve(ctx context.Context, params ServeParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
