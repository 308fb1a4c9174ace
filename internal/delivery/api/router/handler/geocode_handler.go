package handler

import (
	"log/slog"
	"net/http"
	"time"

	"foodcart/internal/delivery/api/response"
	"foodcart/internal/delivery/api/validator"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// GeocodeHandler exposes the geocode cache to managers.
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
	logger    *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: params.GeocodeUC,
		logger:    params.Logger,
	}
}

// LookupGeocodeRequest is the query of GET /geocode.
type LookupGeocodeRequest struct {
	Address string `query:"address" validate:"required,notblank,max=255"`
}

// RefreshGeocodeRequest is the body of POST /geocode/refresh.
type RefreshGeocodeRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=1000"`
}

// GeocodeEntryResponse is a cache entry. Coordinates are null until resolved.
type GeocodeEntryResponse struct {
	ID                uuid.UUID           `json:"id"`
	Address           string              `json:"address"`
	NormalizedAddress *string             `json:"normalized_address"`
	Coordinates       *entity.Coordinates `json:"coordinates"`
	Resolved          bool                `json:"resolved"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// LookupGeocode returns the cache entry of an address without calling the provider.
func (h *GeocodeHandler) LookupGeocode(c echo.Context) error {
	var req LookupGeocodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	entry, err := h.geocodeUC.Lookup(c.Request().Context(), entity.Address(req.Address))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := GeocodeEntryResponse{
		ID:                entry.ID,
		Address:           entry.Address.String(),
		NormalizedAddress: entry.NormalizedAddress,
		Resolved:          entry.Resolved,
		UpdatedAt:         entry.UpdatedAt,
	}
	if coords, ok := entry.Coordinates(); ok {
		resp.Coordinates = &coords
	}

	return response.Success(c, http.StatusOK, resp)
}

// RefreshGeocodes schedules background geocoding of unresolved entries.
func (h *GeocodeHandler) RefreshGeocodes(c echo.Context) error {
	var req RefreshGeocodeRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid refresh request")
		}
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	ctx := c.Request().Context()
	result, err := h.geocodeUC.RequestRefresh(ctx, deliverycontext.GetRequestID(c), req.Limit)
	if err != nil {
		deliverycontext.LoggerOrDefault(ctx, h.logger).Error("Geocode refresh failed", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrGeocodeRefreshFailed)
	}

	return response.Success(c, http.StatusAccepted, result)
}
