package geocoder

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultYandexBaseURL = "https://geocode-maps.yandex.ru/1.x/"
	maxResponseBytes     = 1 << 20
)

// yandexResponse is the subset of the Yandex geocoder JSON answer we read.
type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					MetaDataProperty struct {
						GeocoderMetaData struct {
							Text string `json:"text"`
						} `json:"GeocoderMetaData"`
					} `json:"metaDataProperty"`
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// yandexGeocoder calls the Yandex HTTP geocoder, one request per address.
type yandexGeocoder struct {
	apiKey     string
	baseURL    string
	lang       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewYandexGeocoder creates a geocoder for the Yandex HTTP API.
func NewYandexGeocoder(apiKey, baseURL, lang string, timeout time.Duration, logger *slog.Logger) service.Geocoder {
	if baseURL == "" {
		baseURL = defaultYandexBaseURL
	}

	return &yandexGeocoder{
		apiKey:     apiKey,
		baseURL:    baseURL,
		lang:       lang,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Geocode resolves a free-text address. Every failure is a *service.GeocodeError.
func (g *yandexGeocoder) Geocode(ctx context.Context, rawAddress string) (*service.GeocodeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.requestURL(rawAddress), nil)
	if err != nil {
		return nil, service.NewGeocodeError(service.GeocodeProviderFailure, rawAddress, errors.WithStack(err))
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, service.NewGeocodeError(service.GeocodeProviderFailure, rawAddress, errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, service.NewGeocodeError(service.GeocodeProviderFailure, rawAddress,
			errors.Errorf("geocoder returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, service.NewGeocodeError(service.GeocodeProviderFailure, rawAddress, errors.WithStack(err))
	}

	result, err := parseYandexResponse(rawAddress, body)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "Address geocoded",
		slog.String("address", rawAddress),
		slog.String("normalized", result.NormalizedAddress),
	)

	return result, nil
}

func (g *yandexGeocoder) requestURL(rawAddress string) string {
	query := url.Values{}
	query.Set("apikey", g.apiKey)
	query.Set("geocode", rawAddress)
	query.Set("format", "json")
	query.Set("results", "1")
	if g.lang != "" {
		query.Set("lang", g.lang)
	}

	return g.baseURL + "?" + query.Encode()
}

func parseYandexResponse(rawAddress string, body []byte) (*service.GeocodeResult, error) {
	var payload yandexResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, service.NewGeocodeError(service.GeocodeMalformed, rawAddress, errors.WithStack(err))
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return nil, service.NewGeocodeError(service.GeocodeNotFound, rawAddress, nil)
	}

	object := members[0].GeoObject
	coords, err := parsePos(object.Point.Pos)
	if err != nil {
		return nil, service.NewGeocodeError(service.GeocodeMalformed, rawAddress, err)
	}

	normalized := object.MetaDataProperty.GeocoderMetaData.Text
	if normalized == "" {
		normalized = rawAddress
	}

	return &service.GeocodeResult{
		NormalizedAddress: normalized,
		Coordinates:       coords,
	}, nil
}

// parsePos reads the "longitude latitude" pair Yandex returns.
func parsePos(pos string) (entity.Coordinates, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return entity.Coordinates{}, errors.Errorf("unexpected point %q", pos)
	}

	lng, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "longitude")
	}

	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "latitude")
	}

	return entity.Coordinates{Lat: lat, Lng: lng}, nil
}
