package service

import (
	"context"
	"fmt"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// GeocodeErrorKind classifies provider failures. Every kind is a soft failure for callers.
type GeocodeErrorKind int

const (
	// GeocodeNotFound means the provider answered but had no result for the address.
	GeocodeNotFound GeocodeErrorKind = iota + 1
	// GeocodeProviderFailure covers network, auth, quota and timeout errors.
	GeocodeProviderFailure
	// GeocodeMalformed means the provider answer could not be parsed or was partial.
	GeocodeMalformed
)

// String returns the kind name used in logs.
func (k GeocodeErrorKind) String() string {
	switch k {
	case GeocodeNotFound:
		return "not_found"
	case GeocodeProviderFailure:
		return "provider_failure"
	case GeocodeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// GeocodeError is returned by Geocoder implementations and by the geocode cache.
type GeocodeError struct {
	Kind    GeocodeErrorKind
	Address string
	Err     error
}

// NewGeocodeError builds a GeocodeError of the given kind.
func NewGeocodeError(kind GeocodeErrorKind, address string, err error) *GeocodeError {
	return &GeocodeError{Kind: kind, Address: address, Err: err}
}

func (e *GeocodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("geocode %q: %s", e.Address, e.Kind)
	}

	return fmt.Sprintf("geocode %q: %s: %v", e.Address, e.Kind, e.Err)
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// GeocodeErrorKindOf extracts the kind from err, reporting false when err is not a GeocodeError.
func GeocodeErrorKindOf(err error) (GeocodeErrorKind, bool) {
	var geoErr *GeocodeError
	if errors.As(err, &geoErr) {
		return geoErr.Kind, true
	}

	return 0, false
}

// GeocodeResult is a successful provider answer.
type GeocodeResult struct {
	NormalizedAddress string
	Coordinates       entity.Coordinates
}

// Geocoder wraps an external geocoding provider.
type Geocoder interface {
	// Geocode converts a free-text address into a normalized address and coordinates.
	// Failures are always *GeocodeError.
	Geocode(ctx context.Context, rawAddress string) (*GeocodeResult, error)
}
