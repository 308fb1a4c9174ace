package handler

import (
	"log/slog"
	"math"
	"net/http"
	"time"

	"foodcart/internal/delivery/api/response"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// MatchHandler serves the ranked restaurant lists of open orders.
type MatchHandler struct {
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// CandidateResponse is one ranked restaurant. DistanceKm is null when unknown.
type CandidateResponse struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	DistanceKm   *float64  `json:"distance_km"`
	Label        string    `json:"label"`
}

// OrderMatchResponse is the matching result of one open order.
type OrderMatchResponse struct {
	OrderID       uuid.UUID           `json:"order_id"`
	Status        string              `json:"status"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	PhoneNumber   string              `json:"phone_number"`
	Address       string              `json:"address"`
	PaymentMethod string              `json:"payment_method"`
	Comment       string              `json:"comment,omitempty"`
	Total         float64             `json:"total"`
	RegisteredAt  time.Time           `json:"registered_at"`
	Assigned      bool                `json:"assigned"`
	Candidates    []CandidateResponse `json:"candidates"`
}

// ListOrderMatches runs one matching batch over all open orders.
func (h *MatchHandler) ListOrderMatches(c echo.Context) error {
	ctx := c.Request().Context()

	results, err := h.matchingUC.Run(ctx)
	if err != nil {
		deliverycontext.LoggerOrDefault(ctx, h.logger).Error("Matching batch failed", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrMatchingFailed)
	}

	return response.Success(c, http.StatusOK, toOrderMatchResponses(results))
}

func toOrderMatchResponses(results []entity.MatchResult) []OrderMatchResponse {
	out := make([]OrderMatchResponse, 0, len(results))
	for _, result := range results {
		order := result.Order
		candidates := make([]CandidateResponse, 0, len(result.Candidates))
		for _, candidate := range result.Candidates {
			candidates = append(candidates, CandidateResponse{
				RestaurantID: candidate.Restaurant.ID,
				Name:         candidate.Restaurant.Name,
				Address:      candidate.Restaurant.Address.String(),
				DistanceKm:   roundKm(candidate.DistanceKm),
				Label:        candidate.Label(),
			})
		}

		out = append(out, OrderMatchResponse{
			OrderID:       result.OrderID,
			Status:        order.Status.String(),
			FirstName:     order.FirstName,
			LastName:      order.LastName,
			PhoneNumber:   order.PhoneNumber,
			Address:       order.Address.String(),
			PaymentMethod: order.PaymentMethod.String(),
			Comment:       order.Comment,
			Total:         math.Round(order.Total()*100) / 100,
			RegisteredAt:  order.RegisteredAt,
			Assigned:      result.Assigned,
			Candidates:    candidates,
		})
	}

	return out
}

// roundKm keeps two decimals for display.
func roundKm(km *float64) *float64 {
	if km == nil {
		return nil
	}
	rounded := math.Round(*km*100) / 100

	return &rounded
}
