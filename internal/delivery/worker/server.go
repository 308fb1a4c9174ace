// Package worker serves the Pub/Sub push endpoint of the geo worker.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"foodcart/config"
	"foodcart/internal/delivery"
	"foodcart/internal/delivery/middleware"
	"foodcart/internal/delivery/worker/handler"
	"foodcart/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushPath is where the push subscription, or the local publisher, delivers geocode requests.
const pushPath = "/push"

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	echo     *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the geo worker HTTP server listening on the worker port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Worker == nil {
		return nil, errors.New("worker config is required")
	}

	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		logger:   params.Logger,
		echo:     newEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(pushPath, push.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", s.hostPort))
	if err := s.echo.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
