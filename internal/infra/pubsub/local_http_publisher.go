package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 10 * time.Second
	localSubscription   = "projects/local/subscriptions/geocode-sub"
)

// localHTTPPublisher posts events straight to the geo worker in the push envelope Pub/Sub uses.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushEnvelope is the body of a Pub/Sub push request.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint over plain HTTP.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

// PublishGeocodeRequest delivers event synchronously. Any non-2xx answer from the worker is an error.
func (p *localHTTPPublisher) PublishGeocodeRequest(ctx context.Context, event *service.GeocodeRequestEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	envelope := PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "push to local worker")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Event delivered",
		slog.String("event_id", event.EventID),
		slog.String("address", event.Address),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
