package pubsub

import (
	"context"
	"log/slog"

	"foodcart/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes geocode requests to a Cloud Pub/Sub topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "geocode topic %s", topicPath)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishGeocodeRequest blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishGeocodeRequest(ctx context.Context, event *service.GeocodeRequestEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish geocode request %s", event.EventID)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and closes the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
