package impl

import (
	"context"
	"testing"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"
	mockUC "foodcart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func providerFailure(address string) error {
	return service.NewGeocodeError(service.GeocodeProviderFailure, address, errors.New("connection refused"))
}

func TestDistanceRanker_Rank_OrdersByDistance(t *testing.T) {
	resolver := mockUC.NewMockCoordinateResolver(t)
	ranker := newDistanceRanker(4, newDiscardLogger())

	order := newOrder("A1", uuid.New())
	r1 := newRestaurant("R1", "B1")
	r2 := newRestaurant("R2", "B2")

	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("A1")).Return(entity.Coordinates{Lat: 10, Lng: 10}, nil).Once()
	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("B1")).Return(entity.Coordinates{Lat: 10, Lng: 10.01}, nil).Once()
	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("B2")).Return(entity.Coordinates{Lat: 10, Lng: 10.5}, nil).Once()

	ranked := ranker.Rank(context.Background(), order, RestaurantSet{r2.ID: r2, r1.ID: r1}, resolver)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"R1", "R2"}, candidateNames(ranked))
	require.NotNil(t, ranked[0].DistanceKm)
	require.NotNil(t, ranked[1].DistanceKm)
	assert.InDelta(t, 1.1, *ranked[0].DistanceKm, 0.05)
	assert.InDelta(t, 55, *ranked[1].DistanceKm, 0.5)
}

func TestDistanceRanker_Rank_RestaurantGeocodeFails(t *testing.T) {
	resolver := mockUC.NewMockCoordinateResolver(t)
	ranker := newDistanceRanker(4, newDiscardLogger())

	order := newOrder("A1", uuid.New())
	r1 := newRestaurant("R1", "B1")
	r2 := newRestaurant("A-first-by-name", "B2")

	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("A1")).Return(entity.Coordinates{Lat: 10, Lng: 10}, nil).Once()
	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("B1")).Return(entity.Coordinates{Lat: 10, Lng: 10.01}, nil).Once()
	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("B2")).Return(entity.Coordinates{}, providerFailure("B2")).Once()

	ranked := ranker.Rank(context.Background(), order, RestaurantSet{r1.ID: r1, r2.ID: r2}, resolver)

	require.Len(t, ranked, 2)
	assert.Equal(t, r1.ID, ranked[0].Restaurant.ID)
	assert.InDelta(t, 1.1, *ranked[0].DistanceKm, 0.05)
	assert.Equal(t, r2.ID, ranked[1].Restaurant.ID, "unknown distance sorts last")
	assert.Nil(t, ranked[1].DistanceKm)
}

func TestDistanceRanker_Rank_OrderGeocodeFails(t *testing.T) {
	resolver := mockUC.NewMockCoordinateResolver(t)
	ranker := newDistanceRanker(4, newDiscardLogger())

	order := newOrder("A1", uuid.New())
	b := newRestaurant("Beta", "B1")
	a := newRestaurant("Alpha", "B2")

	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("A1")).
		Return(entity.Coordinates{}, service.NewGeocodeError(service.GeocodeNotFound, "A1", nil)).Once()

	ranked := ranker.Rank(context.Background(), order, RestaurantSet{a.ID: a, b.ID: b}, resolver)

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"Alpha", "Beta"}, candidateNames(ranked))
	for _, candidate := range ranked {
		assert.False(t, candidate.HasDistance())
	}
	resolver.AssertNotCalled(t, "EnsureResolved", mock.Anything, entity.Address("B1"))
}

func TestDistanceRanker_Rank_NoCandidates(t *testing.T) {
	resolver := mockUC.NewMockCoordinateResolver(t)
	ranker := newDistanceRanker(4, newDiscardLogger())

	ranked := ranker.Rank(context.Background(), newOrder("A3", uuid.New()), RestaurantSet{}, resolver)

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
	resolver.AssertNotCalled(t, "EnsureResolved", mock.Anything, mock.Anything)
}

func TestDistanceRanker_Rank_NeverDropsCandidates(t *testing.T) {
	resolver := mockUC.NewMockCoordinateResolver(t)
	ranker := newDistanceRanker(2, newDiscardLogger())

	order := newOrder("A1", uuid.New())
	set := RestaurantSet{}
	for i := 0; i < 20; i++ {
		r := newRestaurant(uuid.NewString(), uuid.NewString())
		set[r.ID] = r
	}

	resolver.EXPECT().EnsureResolved(mock.Anything, entity.Address("A1")).Return(entity.Coordinates{Lat: 55.75, Lng: 37.61}, nil).Once()
	resolver.EXPECT().EnsureResolved(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, address entity.Address) (entity.Coordinates, error) {
			if address[0] < '8' {
				return entity.Coordinates{}, providerFailure(address.String())
			}

			return entity.Coordinates{Lat: 55.7, Lng: 37.6}, nil
		})

	ranked := ranker.Rank(context.Background(), order, set, resolver)

	require.Len(t, ranked, len(set))
	seen := make(map[uuid.UUID]bool)
	known := true
	for _, candidate := range ranked {
		seen[candidate.Restaurant.ID] = true
		if !candidate.HasDistance() {
			known = false
		}
		assert.False(t, candidate.HasDistance() && !known, "known distances precede unknown ones")
	}
	assert.Len(t, seen, len(set))
}

func TestSortCandidates_TieBreak(t *testing.T) {
	same := 2.0
	near := 1.0
	idLow := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	idHigh := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	candidates := []entity.Candidate{
		{Restaurant: entity.Restaurant{ID: idHigh, Name: "Same"}, DistanceKm: &same},
		{Restaurant: entity.Restaurant{ID: uuid.New(), Name: "Unknown"}},
		{Restaurant: entity.Restaurant{ID: idLow, Name: "Same"}, DistanceKm: &same},
		{Restaurant: entity.Restaurant{ID: uuid.New(), Name: "Other"}, DistanceKm: &same},
		{Restaurant: entity.Restaurant{ID: uuid.New(), Name: "Near"}, DistanceKm: &near},
	}

	sortCandidates(candidates)

	assert.Equal(t, []string{"Near", "Other", "Same", "Same", "Unknown"}, candidateNames(candidates))
	assert.Equal(t, idLow, candidates[2].Restaurant.ID)
	assert.Equal(t, idHigh, candidates[3].Restaurant.ID)
}
