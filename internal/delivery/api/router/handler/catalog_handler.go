package handler

import (
	"log/slog"
	"net/http"

	"foodcart/internal/delivery/api/response"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the restaurant list and the product availability matrix.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// RestaurantResponse is one restaurant as managers see it.
type RestaurantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone"`
}

// ProductAvailabilityResponse is one matrix row. Available follows the restaurants column order.
type ProductAvailabilityResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Available []bool    `json:"available"`
}

// AvailabilityMatrixResponse is the body of GET /products/availability.
type AvailabilityMatrixResponse struct {
	Restaurants []RestaurantResponse          `json:"restaurants"`
	Products    []ProductAvailabilityResponse `json:"products"`
}

// ListRestaurants returns every restaurant ordered by name.
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	ctx := c.Request().Context()

	restaurants, err := h.catalogUC.ListRestaurants(ctx)
	if err != nil {
		deliverycontext.LoggerOrDefault(ctx, h.logger).Error("Failed to list restaurants", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrCatalogUnavailable)
	}

	out := make([]RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		out = append(out, toRestaurantResponse(*restaurant))
	}

	return response.Success(c, http.StatusOK, out)
}

// ProductAvailability returns which restaurant sells which product.
func (h *CatalogHandler) ProductAvailability(c echo.Context) error {
	ctx := c.Request().Context()

	matrix, err := h.catalogUC.ProductAvailability(ctx)
	if err != nil {
		deliverycontext.LoggerOrDefault(ctx, h.logger).Error("Failed to build availability matrix", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrCatalogUnavailable)
	}

	out := AvailabilityMatrixResponse{
		Restaurants: make([]RestaurantResponse, 0, len(matrix.Restaurants)),
		Products:    make([]ProductAvailabilityResponse, 0, len(matrix.Products)),
	}
	for _, restaurant := range matrix.Restaurants {
		out.Restaurants = append(out.Restaurants, toRestaurantResponse(restaurant))
	}
	for _, product := range matrix.Products {
		out.Products = append(out.Products, ProductAvailabilityResponse{
			ProductID: product.ProductID,
			Available: product.Available,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

func toRestaurantResponse(restaurant entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		Address:      restaurant.Address.String(),
		ContactPhone: restaurant.ContactPhone,
	}
}
