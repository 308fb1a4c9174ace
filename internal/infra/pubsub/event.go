package pubsub

import (
	"encoding/json"

	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys shared by both transports.
const (
	attrEventID   = "event_id"
	attrRequestID = "request_id"
)

// encodeEvent returns the JSON payload and the tracing attributes of event.
func encodeEvent(event *service.GeocodeRequestEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{attrEventID: event.EventID}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
