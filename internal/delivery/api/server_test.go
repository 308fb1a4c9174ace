package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcart/config"
	apimiddleware "foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/response"
	"foodcart/internal/delivery/api/router"
	"foodcart/internal/delivery/api/router/handler"
	mockservice "foodcart/internal/mocks/service"
	mockusecase "foodcart/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) *apiServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.Port = 18080
	cfg.HTTP.MaxRequestBodySize = "1K"

	delivery, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			MatchHandler: handler.NewMatchHandler(handler.MatchHandlerParams{
				MatchingUC: mockusecase.NewMockMatchingUsecase(t),
				Logger:     logger,
			}),
			GeocodeHandler: handler.NewGeocodeHandler(handler.GeocodeHandlerParams{
				GeocodeUC: mockusecase.NewMockGeocodeUsecase(t),
				Logger:    logger,
			}),
			CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
				CatalogUC: mockusecase.NewMockCatalogUsecase(t),
				Logger:    logger,
			}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(mockservice.NewMockTokenService(t)),
		},
	})
	require.NoError(t, err)

	srv, ok := delivery.(*apiServer)
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0:18080", srv.hostPort)

	return srv
}

func serve(srv *apiServer, req *http.Request) (*httptest.ResponseRecorder, response.ErrorEnvelope) {
	req.Header.Set("X-Request-Id", "req-7")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	var envelope response.ErrorEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)

	return rec, envelope
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "req-7", rec.Header().Get("X-Request-Id"))
}

func TestServer_ErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name     string
		req      func() *http.Request
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown route",
			req:      func() *http.Request { return httptest.NewRequest(http.MethodGet, "/nope", nil) },
			wantCode: http.StatusNotFound,
			wantErr:  apimiddleware.CodeRouteNotFound,
		},
		{
			name:     "wrong method",
			req:      func() *http.Request { return httptest.NewRequest(http.MethodDelete, "/health", nil) },
			wantCode: http.StatusMethodNotAllowed,
			wantErr:  apimiddleware.CodeMethodNotAllowed,
		},
		{
			name:     "manager routes need a token",
			req:      func() *http.Request { return httptest.NewRequest(http.MethodGet, "/api/v1/orders/matches", nil) },
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name: "oversized body",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/geocode/refresh",
					strings.NewReader(`{"limit":1,"pad":"`+strings.Repeat("x", 2048)+`"}`))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

				return req
			},
			wantCode: http.StatusRequestEntityTooLarge,
			wantErr:  apimiddleware.CodePayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)

			rec, envelope := serve(srv, tt.req())

			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantErr, envelope.Error.Code)
			require.NotNil(t, envelope.Meta)
			assert.Equal(t, "req-7", envelope.Meta.RequestID)
		})
	}
}

func TestServer_RecoversFromPanics(t *testing.T) {
	srv := newTestServer(t)
	srv.echo.GET("/boom", func(c echo.Context) error {
		panic("boom")
	})

	rec, envelope := serve(srv, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}
