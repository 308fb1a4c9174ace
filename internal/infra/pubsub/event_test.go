package pubsub

import (
	"testing"

	"foodcart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     *service.GeocodeRequestEvent
		wantData  string
		wantAttrs map[string]string
	}{
		{
			name:      "with request id",
			event:     &service.GeocodeRequestEvent{RequestID: "r-1", EventID: "e-1", Address: "Arbat 10"},
			wantData:  `{"request_id":"r-1","event_id":"e-1","address":"Arbat 10"}`,
			wantAttrs: map[string]string{"event_id": "e-1", "request_id": "r-1"},
		},
		{
			name:      "without request id",
			event:     &service.GeocodeRequestEvent{EventID: "e-2", Address: "Arbat 12"},
			wantData:  `{"event_id":"e-2","address":"Arbat 12"}`,
			wantAttrs: map[string]string{"event_id": "e-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, attrs, err := encodeEvent(tt.event)

			require.NoError(t, err)
			assert.JSONEq(t, tt.wantData, string(data))
			assert.Equal(t, tt.wantAttrs, attrs)
		})
	}
}
