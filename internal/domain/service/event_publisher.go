package service

import (
	"context"
)

// GeocodeRequestEvent asks the geo worker to resolve one address
type GeocodeRequestEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Address   string `json:"address"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishGeocodeRequest publishes a geocode request for async processing
	PublishGeocodeRequest(ctx context.Context, event *GeocodeRequestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
