// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/router/handler"
	"foodcart/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MatchHandler   *handler.MatchHandler
	GeocodeHandler *handler.GeocodeHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	matchHandler   *handler.MatchHandler
	geocodeHandler *handler.GeocodeHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		matchHandler:   params.MatchHandler,
		geocodeHandler: params.GeocodeHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Back-office routes, managers only
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireRole(constants.RoleManager))

	apiV1.GET("/orders/matches", r.matchHandler.ListOrderMatches)
	apiV1.GET("/restaurants", r.catalogHandler.ListRestaurants)
	apiV1.GET("/products/availability", r.catalogHandler.ProductAvailability)

	geocodeGroup := apiV1.Group("/geocode")
	{
		geocodeGroup.GET("", r.geocodeHandler.LookupGeocode)
		geocodeGroup.POST("/refresh", r.geocodeHandler.RefreshGeocodes)
	}
}
