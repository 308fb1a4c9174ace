// Command geoworker resolves addresses pushed by the geocode refresh subscription.
package main

import (
	"foodcart/internal/app"
	"foodcart/internal/delivery/worker"
	"foodcart/internal/delivery/worker/handler"
	"foodcart/internal/usecase"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		fx.Provide(
			func(uc usecase.GeocodeUsecase) usecase.CoordinateResolver {
				return uc
			},
			handler.NewPushHandler,
		),
		app.Deliveries(worker.NewServer),
		fx.Invoke(app.Serve),
	).Run()
}
