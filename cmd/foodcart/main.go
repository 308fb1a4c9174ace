// Command foodcart serves the back-office API for order matching.
package main

import (
	"foodcart/internal/app"
	"foodcart/internal/delivery/api"
	"foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		fx.Provide(
			middleware.NewAuthMiddleware,
			handler.NewMatchHandler,
			handler.NewGeocodeHandler,
			handler.NewCatalogHandler,
		),
		app.Deliveries(api.NewServer),
		fx.Invoke(app.Serve),
	).Run()
}
