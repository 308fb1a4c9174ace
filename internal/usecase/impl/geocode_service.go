package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/entity"
	domainerrors "foodcart/internal/domain/errors"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRefreshLimit = 100
	// defaultProviderTimeout bounds provider calls when the config sets none.
	defaultProviderTimeout = 5 * time.Second
)

// ErrEmptyAddress is returned by Lookup for a blank address.
var ErrEmptyAddress = domainerrors.ErrInvalidAddress.WrapMessage("address is empty")

// geocodeService is the durable geocode cache. Resolved coordinates are also kept
// in memory for the lifetime of the process since a resolved entry never changes.
type geocodeService struct {
	logger    *slog.Logger
	repo      repository.GeocodeRepository
	geocoder  service.Geocoder
	publisher service.EventPublisher
	timeout   time.Duration
	now       func() time.Time

	mu       sync.RWMutex
	resolved map[entity.Address]entity.Coordinates
	inflight singleflight.Group
}

// NewGeocodeService creates the geocode cache backed by repo and geocoder.
func NewGeocodeService(
	logger *slog.Logger,
	repo repository.GeocodeRepository,
	geocoder service.Geocoder,
	publisher service.EventPublisher,
	cfg *config.GeocoderConfig,
) usecase.GeocodeUsecase {
	timeout := defaultProviderTimeout
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &geocodeService{
		logger:    logger,
		repo:      repo,
		geocoder:  geocoder,
		publisher: publisher,
		timeout:   timeout,
		now:       time.Now,
		resolved:  make(map[entity.Address]entity.Coordinates),
	}
}

// Lookup returns the entry for address, creating an unresolved one when absent.
func (s *geocodeService) Lookup(ctx context.Context, address entity.Address) (*entity.GeocodeEntry, error) {
	if address.IsEmpty() {
		return nil, ErrEmptyAddress
	}

	entry, err := s.repo.FindByAddress(ctx, address)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, repository.ErrGeocodeEntryNotFound) {
		return nil, errors.Wrap(err, "failed to find geocode entry")
	}

	entry, err = s.repo.CreateUnresolved(ctx, entity.NewUnresolvedGeocodeEntry(address, s.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create geocode entry")
	}

	return entry, nil
}

// EnsureResolved returns the coordinates of address, calling the provider at most once
// for concurrent callers and never again once the entry is resolved.
func (s *geocodeService) EnsureResolved(ctx context.Context, address entity.Address) (entity.Coordinates, error) {
	if address.IsEmpty() {
		return entity.Coordinates{}, service.NewGeocodeError(service.GeocodeNotFound, "", ErrEmptyAddress)
	}

	if coords, ok := s.cached(address); ok {
		return coords, nil
	}

	// The shared call outlives any single caller; the provider timeout bounds it.
	shared := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(address.String(), func() (any, error) {
		if coords, ok := s.cached(address); ok {
			return coords, nil
		}

		return s.resolve(shared, address)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return entity.Coordinates{}, res.Err
		}

		return res.Val.(entity.Coordinates), nil
	case <-ctx.Done():
		return entity.Coordinates{}, service.NewGeocodeError(service.GeocodeProviderFailure, address.String(), ctx.Err())
	}
}

func (s *geocodeService) cached(address entity.Address) (entity.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coords, ok := s.resolved[address]

	return coords, ok
}

func (s *geocodeService) remember(address entity.Address, coords entity.Coordinates) {
	s.mu.Lock()
	s.resolved[address] = coords
	s.mu.Unlock()
}

func (s *geocodeService) resolve(ctx context.Context, address entity.Address) (entity.Coordinates, error) {
	entry, err := s.Lookup(ctx, address)
	if err != nil {
		return entity.Coordinates{}, service.NewGeocodeError(service.GeocodeProviderFailure, address.String(), err)
	}

	if coords, ok := entry.Coordinates(); ok {
		s.remember(address, coords)

		return coords, nil
	}

	result, err := s.callProvider(ctx, address)
	if err != nil {
		return entity.Coordinates{}, err
	}

	entry.MarkResolved(result.NormalizedAddress, result.Coordinates, s.now())
	if err := s.repo.Save(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist geocode result",
			slog.String("address", address.String()),
			slog.Any("error", err),
		)
	}
	s.remember(address, result.Coordinates)

	return result.Coordinates, nil
}

func (s *geocodeService) callProvider(ctx context.Context, address entity.Address) (*service.GeocodeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.geocoder.Geocode(ctx, address.String())
	if err != nil {
		if _, ok := service.GeocodeErrorKindOf(err); ok {
			return nil, err
		}

		return nil, service.NewGeocodeError(service.GeocodeProviderFailure, address.String(), err)
	}

	if result == nil || !validCoordinates(result.Coordinates) {
		return nil, service.NewGeocodeError(service.GeocodeMalformed, address.String(), errors.New("provider returned invalid coordinates"))
	}

	return result, nil
}

func validCoordinates(c entity.Coordinates) bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Preload loads already resolved entries for addresses not yet in memory.
func (s *geocodeService) Preload(ctx context.Context, addresses []entity.Address) error {
	seen := make(map[entity.Address]struct{}, len(addresses))
	missing := make([]entity.Address, 0, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address]; ok || address.IsEmpty() {
			continue
		}
		seen[address] = struct{}{}
		if _, ok := s.cached(address); !ok {
			missing = append(missing, address)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	entries, err := s.repo.FindByAddresses(ctx, missing)
	if err != nil {
		return errors.Wrap(err, "failed to preload geocode entries")
	}

	for address, entry := range entries {
		if coords, ok := entry.Coordinates(); ok {
			s.remember(address, coords)
		}
	}

	return nil
}

// RequestRefresh publishes one geocode request per unresolved entry for the geo worker.
func (s *geocodeService) RequestRefresh(ctx context.Context, requestID string, limit int) (*usecase.RefreshResult, error) {
	if limit <= 0 {
		limit = defaultRefreshLimit
	}

	entries, err := s.repo.FindUnresolved(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unresolved geocode entries")
	}

	result := &usecase.RefreshResult{}
	for _, entry := range entries {
		event := &service.GeocodeRequestEvent{
			RequestID: requestID,
			EventID:   uuid.NewString(),
			Address:   entry.Address.String(),
		}

		if err := s.publisher.PublishGeocodeRequest(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish geocode request",
				slog.String("address", event.Address),
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
			result.Failed++

			continue
		}
		result.Scheduled++
	}

	return result, nil
}
