// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// ErrGeocodeEntryNotFound is returned when no cache entry exists for an address.
var ErrGeocodeEntryNotFound = errors.New("geocode entry not found")

// GeocodeRepository persists geocode cache entries, at most one per distinct address.
type GeocodeRepository interface {
	// FindByAddress returns the entry for an address or ErrGeocodeEntryNotFound.
	FindByAddress(ctx context.Context, address entity.Address) (*entity.GeocodeEntry, error)

	// FindByAddresses returns the entries that exist for the given addresses, keyed by address.
	FindByAddresses(ctx context.Context, addresses []entity.Address) (map[entity.Address]*entity.GeocodeEntry, error)

	// CreateUnresolved inserts an unresolved entry unless one already exists for the address,
	// and returns the stored entry either way.
	CreateUnresolved(ctx context.Context, entry *entity.GeocodeEntry) (*entity.GeocodeEntry, error)

	// Save creates or updates the entry keyed by address.
	Save(ctx context.Context, entry *entity.GeocodeEntry) error

	// FindUnresolved returns up to limit entries that still have no coordinates, oldest first.
	FindUnresolved(ctx context.Context, limit int) ([]*entity.GeocodeEntry, error)
}
