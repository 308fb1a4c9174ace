package impl

import (
	"context"
	"sync"

	"foodcart/internal/domain/entity"
	"foodcart/internal/usecase"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type resolution struct {
	coords entity.Coordinates
	err    error
}

// batchResolver memoizes outcomes for a single batch run, failures included,
// so every distinct address reaches the cache at most once per run.
type batchResolver struct {
	inner usecase.CoordinateResolver

	mu       sync.Mutex
	results  map[entity.Address]resolution
	inflight singleflight.Group
}

func newBatchResolver(inner usecase.CoordinateResolver) *batchResolver {
	return &batchResolver{
		inner:   inner,
		results: make(map[entity.Address]resolution),
	}
}

func (b *batchResolver) EnsureResolved(ctx context.Context, address entity.Address) (entity.Coordinates, error) {
	if res, ok := b.lookup(address); ok {
		return res.coords, res.err
	}

	v, _, _ := b.inflight.Do(address.String(), func() (any, error) {
		if res, ok := b.lookup(address); ok {
			return res, nil
		}

		coords, err := b.inner.EnsureResolved(ctx, address)
		res := resolution{coords: coords, err: err}

		b.mu.Lock()
		b.results[address] = res
		b.mu.Unlock()

		return res, nil
	})
	res := v.(resolution)

	return res.coords, res.err
}

func (b *batchResolver) lookup(address entity.Address) (resolution, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	res, ok := b.results[address]

	return res, ok
}

// Prefetch resolves the distinct addresses concurrently with at most workers in flight.
func (b *batchResolver) Prefetch(ctx context.Context, addresses []entity.Address, workers int) {
	if workers <= 0 {
		workers = defaultRankWorkers
	}

	var group errgroup.Group
	group.SetLimit(workers)

	seen := make(map[entity.Address]struct{}, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}

		group.Go(func() error {
			_, _ = b.EnsureResolved(ctx, address)

			return nil
		})
	}
	_ = group.Wait()
}
