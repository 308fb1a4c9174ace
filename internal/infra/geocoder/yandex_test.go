package geocoder

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return data
}

func newTestServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("geocode"))
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestYandexGeocoder_Geocode(t *testing.T) {
	server := newTestServer(t, http.StatusOK, fixture(t, "yandex_found.json"))
	geocoder := NewYandexGeocoder("test-key", server.URL, "ru_RU", time.Second, newDiscardLogger())

	result, err := geocoder.Geocode(context.Background(), "Москва, Тверская 1")

	require.NoError(t, err)
	assert.Equal(t, "Россия, Москва, Тверская улица, 1", result.NormalizedAddress)
	assert.Equal(t, entity.Coordinates{Lat: 55.757920, Lng: 37.611347}, result.Coordinates)
}

func TestYandexGeocoder_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     []byte
		wantKind service.GeocodeErrorKind
	}{
		{name: "no results", status: http.StatusOK, body: fixture(t, "yandex_empty.json"), wantKind: service.GeocodeNotFound},
		{name: "forbidden", status: http.StatusForbidden, body: []byte(`{"message":"Invalid api key"}`), wantKind: service.GeocodeProviderFailure},
		{name: "rate limited", status: http.StatusTooManyRequests, wantKind: service.GeocodeProviderFailure},
		{name: "server error", status: http.StatusInternalServerError, wantKind: service.GeocodeProviderFailure},
		{name: "not json", status: http.StatusOK, body: []byte(`<html>`), wantKind: service.GeocodeMalformed},
		{
			name:     "partial point",
			status:   http.StatusOK,
			body:     []byte(`{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"37.6"}}}]}}}`),
			wantKind: service.GeocodeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.status, tt.body)
			geocoder := NewYandexGeocoder("test-key", server.URL, "", time.Second, newDiscardLogger())

			result, err := geocoder.Geocode(context.Background(), "somewhere")

			assert.Nil(t, result)
			kind, ok := service.GeocodeErrorKindOf(err)
			require.True(t, ok, "error should be a GeocodeError: %v", err)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestYandexGeocoder_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	geocoder := NewYandexGeocoder("test-key", server.URL, "", 50*time.Millisecond, newDiscardLogger())

	_, err := geocoder.Geocode(context.Background(), "slow")

	kind, ok := service.GeocodeErrorKindOf(err)
	require.True(t, ok)
	assert.Equal(t, service.GeocodeProviderFailure, kind)
}

func TestParsePos(t *testing.T) {
	coords, err := parsePos(" 10.01   10 ")
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Lat: 10, Lng: 10.01}, coords)

	for _, pos := range []string{"", "1", "a b", "1 b", "1 2 3"} {
		_, err := parsePos(pos)
		assert.Error(t, err, pos)
	}
}

func TestNewGeocoder(t *testing.T) {
	t.Run("yandex", func(t *testing.T) {
		geocoder, err := NewGeocoder(GeocoderParams{
			Config: &config.Config{Geocoder: &config.GeocoderConfig{Provider: "yandex", APIKey: "k"}},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &yandexGeocoder{}, geocoder)
	})

	t.Run("missing api key falls back", func(t *testing.T) {
		geocoder, err := NewGeocoder(GeocoderParams{
			Config: &config.Config{Geocoder: &config.GeocoderConfig{Provider: "yandex"}},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)

		_, err = geocoder.Geocode(context.Background(), "A1")
		assert.ErrorIs(t, err, ErrGeocoderNotConfigured)
		kind, _ := service.GeocodeErrorKindOf(err)
		assert.Equal(t, service.GeocodeProviderFailure, kind)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewGeocoder(GeocoderParams{
			Config: &config.Config{Geocoder: &config.GeocoderConfig{Provider: "osm"}},
			Logger: newDiscardLogger(),
		})
		assert.ErrorContains(t, err, "unknown geocoder provider")
	})
}
