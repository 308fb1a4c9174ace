package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishGeocodeRequest(t *testing.T) {
	var received PushEnvelope
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.GeocodeRequestEvent{
		RequestID: "req-42",
		EventID:   "evt-1",
		Address:   "Moscow, Tverskaya 1",
	}

	require.NoError(t, publisher.PublishGeocodeRequest(context.Background(), event))

	assert.Equal(t, "req-42", requestIDHeader)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "evt-1", received.Message.Attributes["event_id"])
	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.GeocodeRequestEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishGeocodeRequest(context.Background(), &service.GeocodeRequestEvent{EventID: "evt-1", Address: "A1"})

	assert.ErrorContains(t, err, "503")
}
