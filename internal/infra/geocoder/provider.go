package geocoder

import (
	"context"
	"log/slog"

	"foodcart/config"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrGeocoderNotConfigured is wrapped by the fallback geocoder used when no API key is set.
var ErrGeocoderNotConfigured = errors.New("geocoder api key is not configured")

// unavailableGeocoder fails every lookup so that distances degrade to unknown.
type unavailableGeocoder struct{}

func (unavailableGeocoder) Geocode(_ context.Context, rawAddress string) (*service.GeocodeResult, error) {
	return nil, service.NewGeocodeError(service.GeocodeProviderFailure, rawAddress, ErrGeocoderNotConfigured)
}

// GeocoderParams holds dependencies for Geocoder, injected by Fx
type GeocoderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder creates the configured geocoding provider.
func NewGeocoder(params GeocoderParams) (service.Geocoder, error) {
	cfg := params.Config.Geocoder
	if cfg == nil {
		return nil, errors.New("geocoder is not configured")
	}

	switch cfg.Provider {
	case constants.GeocoderProviderYandex:
		if cfg.APIKey == "" {
			params.Logger.Warn("Geocoder API key is empty, distances will be unknown")

			return unavailableGeocoder{}, nil
		}

		return NewYandexGeocoder(cfg.APIKey, cfg.BaseURL, cfg.Lang, cfg.Timeout, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown geocoder provider: %s", cfg.Provider)
	}
}

// Module provides the geocoder FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocoder),
)
