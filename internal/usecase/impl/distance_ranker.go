package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"
	"foodcart/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/sync/errgroup"
)

const defaultRankWorkers = 8

// distanceRanker orders candidate restaurants by great-circle distance to the order address.
type distanceRanker struct {
	workers int
	logger  *slog.Logger
}

func newDistanceRanker(workers int, logger *slog.Logger) *distanceRanker {
	if workers <= 0 {
		workers = defaultRankWorkers
	}

	return &distanceRanker{workers: workers, logger: logger}
}

// Rank returns one entry per candidate, never fewer.
// Geocoding failures only null out the affected distances.
func (r *distanceRanker) Rank(
	ctx context.Context,
	order *entity.Order,
	candidates RestaurantSet,
	resolver usecase.CoordinateResolver,
) []entity.Candidate {
	if len(candidates) == 0 {
		return []entity.Candidate{}
	}

	restaurants := candidates.Sorted()
	ranked := make([]entity.Candidate, len(restaurants))
	for i, restaurant := range restaurants {
		ranked[i] = entity.Candidate{Restaurant: restaurant}
	}

	origin, err := resolver.EnsureResolved(ctx, order.Address)
	if err != nil {
		r.logGeocodeFailure(ctx, "order", order.Address, err)

		return ranked
	}

	var group errgroup.Group
	group.SetLimit(r.workers)

	for i := range ranked {
		group.Go(func() error {
			address := ranked[i].Restaurant.Address

			target, err := resolver.EnsureResolved(ctx, address)
			if err != nil {
				r.logGeocodeFailure(ctx, "restaurant", address, err)

				return nil
			}

			distance := distanceKm(origin, target)
			ranked[i].DistanceKm = &distance

			return nil
		})
	}
	_ = group.Wait()

	sortCandidates(ranked)

	return ranked
}

func (r *distanceRanker) logGeocodeFailure(ctx context.Context, subject string, address entity.Address, err error) {
	kind, _ := service.GeocodeErrorKindOf(err)
	r.logger.LogAttrs(ctx, slog.LevelWarn, "Distance unknown, address not geocoded",
		slog.String("subject", subject),
		slog.String("address", address.String()),
		slog.String("kind", kind.String()),
		slog.Any("error", err),
	)
}

// distanceKm is the haversine distance between two points in kilometers.
func distanceKm(from, to entity.Coordinates) float64 {
	return geo.DistanceHaversine(
		orb.Point{from.Lng, from.Lat},
		orb.Point{to.Lng, to.Lat},
	) / 1000
}

// sortCandidates orders by ascending distance with unknown distances last.
// Ties are broken by restaurant name, then ID.
func sortCandidates(candidates []entity.Candidate) {
	slices.SortStableFunc(candidates, func(a, b entity.Candidate) int {
		switch {
		case a.DistanceKm != nil && b.DistanceKm != nil:
			if c := cmp.Compare(*a.DistanceKm, *b.DistanceKm); c != 0 {
				return c
			}
		case a.DistanceKm != nil:
			return -1
		case b.DistanceKm != nil:
			return 1
		}

		return compareRestaurants(a.Restaurant, b.Restaurant)
	})
}
