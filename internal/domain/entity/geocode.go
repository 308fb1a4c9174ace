// Package entity contains the core business objects of the ordering platform.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is the literal address string used as the geocode cache key.
// Two records sharing the same string share one cache entry; no fuzzy matching is done.
type Address string

// NewAddress trims surrounding whitespace, nothing else.
func NewAddress(raw string) Address {
	return Address(strings.TrimSpace(raw))
}

// String returns the raw address text.
func (a Address) String() string {
	return string(a)
}

// IsEmpty reports whether the address has no text.
func (a Address) IsEmpty() bool {
	return a == ""
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeEntry is the cached geocoding state of one address.
// Resolved implies Latitude and Longitude are set.
type GeocodeEntry struct {
	ID                uuid.UUID
	Address           Address
	NormalizedAddress *string
	Latitude          *float64
	Longitude         *float64
	Resolved          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUnresolvedGeocodeEntry creates the entry stored the first time an address is seen.
func NewUnresolvedGeocodeEntry(address Address, now time.Time) *GeocodeEntry {
	return &GeocodeEntry{
		ID:        uuid.New(),
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Coordinates returns the cached point when the entry is resolved.
func (e *GeocodeEntry) Coordinates() (Coordinates, bool) {
	if e == nil || !e.Resolved || e.Latitude == nil || e.Longitude == nil {
		return Coordinates{}, false
	}

	return Coordinates{Lat: *e.Latitude, Lng: *e.Longitude}, true
}

// MarkResolved stores a successful provider answer on the entry.
func (e *GeocodeEntry) MarkResolved(normalized string, coords Coordinates, now time.Time) {
	lat, lng := coords.Lat, coords.Lng
	e.NormalizedAddress = &normalized
	e.Latitude = &lat
	e.Longitude = &lng
	e.Resolved = true
	e.UpdatedAt = now
}
