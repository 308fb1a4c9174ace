// Package api serves the back-office HTTP API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"foodcart/config"
	"foodcart/internal/delivery"
	apimiddleware "foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/router"
	"foodcart/internal/delivery/api/validator"
	"foodcart/internal/delivery/middleware"
	"foodcart/internal/domain/lifecycle"
	"foodcart/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	hostPort    string
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the manager API and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		hostPort:    net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho returns an echo instance with the middleware chain and error rendering of the API.
// Recover runs first and the request ID is assigned before the access log.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORS())
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting API HTTP server", slog.String("host_port", s.hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.idleTimeout,
	}
	if err := s.echo.StartH2CServer(s.hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
