// Package pubsub publishes geocode refresh requests for the geo worker.
package pubsub

import (
	"context"
	"log/slog"

	"foodcart/config"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops refresh requests when no transport is configured.
// Unresolved addresses are still resolved lazily by the next matching batch.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishGeocodeRequest(ctx context.Context, event *service.GeocodeRequestEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Dropping geocode request",
		slog.String("event_id", event.EventID),
		slog.String("address", event.Address),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the publisher for geocode refresh events and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, geocode refresh requests are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Pushing geocode requests to local worker",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	default:
		logger.Info("Publishing geocode requests to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}
}

func validateConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
