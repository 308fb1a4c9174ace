package usecase

import (
	"context"

	"foodcart/internal/domain/entity"
)

// CoordinateResolver resolves an address to coordinates, possibly calling the provider.
// Errors are soft: callers degrade the affected distance to unknown.
type CoordinateResolver interface {
	EnsureResolved(ctx context.Context, address entity.Address) (entity.Coordinates, error)
}

// RefreshResult summarises a geocode refresh request.
type RefreshResult struct {
	Scheduled int `json:"scheduled"`
	Failed    int `json:"failed"`
}

// GeocodeUsecase is the durable geocode cache.
type GeocodeUsecase interface {
	CoordinateResolver

	// Lookup returns the cache entry for an address, creating an unresolved one when absent.
	// It never calls the provider.
	Lookup(ctx context.Context, address entity.Address) (*entity.GeocodeEntry, error)

	// Preload warms the in-memory cache with the stored coordinates of addresses in one query.
	Preload(ctx context.Context, addresses []entity.Address) error

	// RequestRefresh publishes geocode requests for up to limit unresolved entries.
	// requestID is propagated to the events for tracing and may be empty.
	RequestRefresh(ctx context.Context, requestID string, limit int) (*RefreshResult, error)
}
