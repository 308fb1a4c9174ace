package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/response"
	"foodcart/internal/delivery/api/router/handler"
	"foodcart/internal/delivery/api/validator"
	"foodcart/internal/delivery/middleware"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"
	mockservice "foodcart/internal/mocks/service"
	mockusecase "foodcart/internal/mocks/usecase"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type apiFixture struct {
	echo       *echo.Echo
	tokenSvc   *mockservice.MockTokenService
	matchingUC *mockusecase.MockMatchingUsecase
	geocodeUC  *mockusecase.MockGeocodeUsecase
	catalogUC  *mockusecase.MockCatalogUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		echo:       echo.New(),
		tokenSvc:   mockservice.NewMockTokenService(t),
		matchingUC: mockusecase.NewMockMatchingUsecase(t),
		geocodeUC:  mockusecase.NewMockGeocodeUsecase(t),
		catalogUC:  mockusecase.NewMockCatalogUsecase(t),
	}

	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	f.echo.Use(middleware.NewRequestIDMiddleware(logger).Process)

	NewRouter(RouterParams{
		MatchHandler: handler.NewMatchHandler(handler.MatchHandlerParams{
			MatchingUC: f.matchingUC,
			Logger:     logger,
		}),
		GeocodeHandler: handler.NewGeocodeHandler(handler.GeocodeHandlerParams{
			GeocodeUC: f.geocodeUC,
			Logger:    logger,
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: f.catalogUC,
			Logger:    logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.tokenSvc),
	}).RegisterRoutes(f.echo)

	return f
}

func (f *apiFixture) asRole(role string) {
	f.tokenSvc.EXPECT().ValidateAccessToken(testToken).Return(&service.AccessClaims{
		Subject:   uuid.New(),
		Roles:     []string{role},
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	req.Header.Set("X-Request-Id", "req-1")
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()

	var resp struct {
		Error response.ErrorBody `json:"error"`
		Meta  response.Meta      `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp.Meta.RequestID)

	return resp.Error
}

func TestHealthCheck_NoAuth(t *testing.T) {
	f := newAPIFixture(t)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/matches", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newAPIFixture(t)
		f.tokenSvc.EXPECT().ValidateAccessToken(testToken).Return(nil, errors.New("token expired"))

		rec := f.do(http.MethodGet, "/api/v1/orders/matches", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole("courier")

		rec := f.do(http.MethodGet, "/api/v1/orders/matches", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
	})
}

func TestListOrderMatches(t *testing.T) {
	t.Run("renders ranked candidates", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)

		near := 1.23456
		orderID := uuid.New()
		restaurantID := uuid.New()
		f.matchingUC.EXPECT().Run(mock.Anything).Return([]entity.MatchResult{
			{
				OrderID: orderID,
				Order: entity.Order{
					ID:            orderID,
					FirstName:     "Ivan",
					Address:       "Tverskaya 1",
					Status:        entity.OrderStatusNew,
					PaymentMethod: entity.PaymentMethodCard,
					Items:         []entity.OrderItem{{Quantity: 3, Price: 1.1}},
				},
				Candidates: []entity.Candidate{
					{Restaurant: entity.Restaurant{ID: restaurantID, Name: "Star Burger"}, DistanceKm: &near},
					{Restaurant: entity.Restaurant{ID: uuid.New(), Name: "Far Away"}},
				},
			},
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/orders/matches", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []handler.OrderMatchResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)

		got := resp.Data[0]
		assert.Equal(t, orderID, got.OrderID)
		assert.Equal(t, "new", got.Status)
		assert.Equal(t, "card", got.PaymentMethod)
		assert.InDelta(t, 3.3, got.Total, 1e-9)
		require.Len(t, got.Candidates, 2)
		assert.Equal(t, restaurantID, got.Candidates[0].RestaurantID)
		require.NotNil(t, got.Candidates[0].DistanceKm)
		assert.InDelta(t, 1.23, *got.Candidates[0].DistanceKm, 1e-9)
		assert.Equal(t, "Star Burger - 1.23 km", got.Candidates[0].Label)
		assert.Nil(t, got.Candidates[1].DistanceKm)
		assert.Equal(t, "Far Away - distance unknown", got.Candidates[1].Label)
	})

	t.Run("matching failure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.matchingUC.EXPECT().Run(mock.Anything).Return(nil, errors.New("db down"))

		rec := f.do(http.MethodGet, "/api/v1/orders/matches", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "MATCHING_FAILED", decodeError(t, rec).Code)
	})
}

func TestLookupGeocode(t *testing.T) {
	t.Run("address key is not trimmed", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)

		f.geocodeUC.EXPECT().Lookup(mock.Anything, entity.Address(" Arbat 10 ")).Return(&entity.GeocodeEntry{
			ID:      uuid.New(),
			Address: " Arbat 10 ",
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/geocode?address=+Arbat+10+", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data handler.GeocodeEntryResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, " Arbat 10 ", resp.Data.Address)
	})

	t.Run("resolved entry", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)

		lat, lng := 55.757718, 37.615312
		normalized := "Russia, Moscow, Tverskaya Street, 1"
		f.geocodeUC.EXPECT().Lookup(mock.Anything, entity.Address("Tverskaya 1")).Return(&entity.GeocodeEntry{
			ID:                uuid.New(),
			Address:           "Tverskaya 1",
			NormalizedAddress: &normalized,
			Latitude:          &lat,
			Longitude:         &lng,
			Resolved:          true,
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/geocode?address=Tverskaya+1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data handler.GeocodeEntryResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Resolved)
		require.NotNil(t, resp.Data.Coordinates)
		assert.Equal(t, entity.Coordinates{Lat: lat, Lng: lng}, *resp.Data.Coordinates)
	})

	t.Run("unresolved entry has null coordinates", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.geocodeUC.EXPECT().Lookup(mock.Anything, entity.Address("Unknown 5")).Return(&entity.GeocodeEntry{
			ID:      uuid.New(),
			Address: "Unknown 5",
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/geocode?address=Unknown+5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"coordinates":null`)
	})

	t.Run("blank address fails validation", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)

		rec := f.do(http.MethodGet, "/api/v1/geocode?address=+++", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", info.Code)
		assert.Equal(t, map[string]any{"Address": "notblank"}, info.Details)
	})

	t.Run("invalid address from usecase", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.geocodeUC.EXPECT().Lookup(mock.Anything, entity.Address("x")).
			Return(nil, domainerrors.ErrInvalidAddress.WrapMessage("address is empty"))

		rec := f.do(http.MethodGet, "/api/v1/geocode?address=x", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ADDRESS", decodeError(t, rec).Code)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.geocodeUC.EXPECT().Lookup(mock.Anything, entity.Address("x")).Return(nil, errors.New("db down"))

		rec := f.do(http.MethodGet, "/api/v1/geocode?address=x", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Code)
	})
}

func TestRefreshGeocodes(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.geocodeUC.EXPECT().RequestRefresh(mock.Anything, "req-1", 0).
			Return(&usecase.RefreshResult{Scheduled: 4}, nil)

		rec := f.do(http.MethodPost, "/api/v1/geocode/refresh", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), `"scheduled":4`)
	})

	t.Run("explicit limit", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.geocodeUC.EXPECT().RequestRefresh(mock.Anything, "req-1", 10).
			Return(&usecase.RefreshResult{Scheduled: 10}, nil)

		rec := f.do(http.MethodPost, "/api/v1/geocode/refresh", `{"limit":10}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("limit out of range", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)

		rec := f.do(http.MethodPost, "/api/v1/geocode/refresh", `{"limit":5000}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("publisher failure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.geocodeUC.EXPECT().RequestRefresh(mock.Anything, "req-1", 0).Return(nil, errors.New("list failed"))

		rec := f.do(http.MethodPost, "/api/v1/geocode/refresh", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "GEOCODE_REFRESH_FAILED", decodeError(t, rec).Code)
	})
}

func TestListRestaurants(t *testing.T) {
	t.Run("renders restaurants in order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)

		arbat := &entity.Restaurant{ID: uuid.New(), Name: "Star Burger Arbat", Address: "Arbat 10", ContactPhone: "+74950000001"}
		lubyanka := &entity.Restaurant{ID: uuid.New(), Name: "Star Burger Lubyanka", Address: "Lubyanka 2"}
		f.catalogUC.EXPECT().ListRestaurants(mock.Anything).Return([]*entity.Restaurant{arbat, lubyanka}, nil)

		rec := f.do(http.MethodGet, "/api/v1/restaurants", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []handler.RestaurantResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []handler.RestaurantResponse{
			{ID: arbat.ID, Name: "Star Burger Arbat", Address: "Arbat 10", ContactPhone: "+74950000001"},
			{ID: lubyanka.ID, Name: "Star Burger Lubyanka", Address: "Lubyanka 2"},
		}, resp.Data)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.catalogUC.EXPECT().ListRestaurants(mock.Anything).Return(nil, errors.New("db down"))

		rec := f.do(http.MethodGet, "/api/v1/restaurants", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "CATALOG_UNAVAILABLE", decodeError(t, rec).Code)
	})

	t.Run("managers only", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole("courier")

		rec := f.do(http.MethodGet, "/api/v1/restaurants", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestProductAvailability(t *testing.T) {
	t.Run("renders the matrix", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)

		arbat := entity.Restaurant{ID: uuid.New(), Name: "Star Burger Arbat", Address: "Arbat 10"}
		lubyanka := entity.Restaurant{ID: uuid.New(), Name: "Star Burger Lubyanka", Address: "Lubyanka 2"}
		burger := uuid.New()
		f.catalogUC.EXPECT().ProductAvailability(mock.Anything).Return(&entity.AvailabilityMatrix{
			Restaurants: []entity.Restaurant{arbat, lubyanka},
			Products:    []entity.ProductAvailability{{ProductID: burger, Available: []bool{true, false}}},
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/products/availability", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data handler.AvailabilityMatrixResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Restaurants, 2)
		assert.Equal(t, arbat.ID, resp.Data.Restaurants[0].ID)
		assert.Equal(t, lubyanka.ID, resp.Data.Restaurants[1].ID)
		assert.Equal(t, []handler.ProductAvailabilityResponse{
			{ProductID: burger, Available: []bool{true, false}},
		}, resp.Data.Products)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.asRole(constants.RoleManager)
		f.catalogUC.EXPECT().ProductAvailability(mock.Anything).Return(nil, errors.New("db down"))

		rec := f.do(http.MethodGet, "/api/v1/products/availability", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "CATALOG_UNAVAILABLE", decodeError(t, rec).Code)
	})
}
