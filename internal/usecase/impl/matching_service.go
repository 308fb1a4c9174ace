package impl

import (
	"context"
	"log/slog"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
)

type matchingService struct {
	logger         *slog.Logger
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	menuItemRepo   repository.MenuItemRepository
	geocodes       usecase.GeocodeUsecase
	ranker         *distanceRanker
	workers        int
	batchTimeout   time.Duration
}

// NewMatchingService creates the batch orchestrator that matches open orders to restaurants.
func NewMatchingService(
	logger *slog.Logger,
	orderRepo repository.OrderRepository,
	restaurantRepo repository.RestaurantRepository,
	menuItemRepo repository.MenuItemRepository,
	geocodes usecase.GeocodeUsecase,
	cfg *config.MatchingConfig,
) usecase.MatchingUsecase {
	workers := defaultRankWorkers
	var batchTimeout time.Duration
	if cfg != nil {
		if cfg.Workers > 0 {
			workers = cfg.Workers
		}
		batchTimeout = cfg.BatchTimeout
	}

	return &matchingService{
		logger:         logger,
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		menuItemRepo:   menuItemRepo,
		geocodes:       geocodes,
		ranker:         newDistanceRanker(workers, logger),
		workers:        workers,
		batchTimeout:   batchTimeout,
	}
}

// Run loads the batch input from the store and matches it.
func (s *matchingService) Run(ctx context.Context) ([]entity.MatchResult, error) {
	if s.batchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.batchTimeout)
		defer cancel()
	}

	orders, err := s.orderRepo.ListOpenOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open orders")
	}

	restaurants, err := s.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	menuItems, err := s.menuItemRepo.ListAvailableMenuItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return s.RunFor(ctx, orders, restaurants, menuItems)
}

// pendingOrder is an order waiting for ranking, or one with a committed restaurant.
type pendingOrder struct {
	order      *entity.Order
	candidates RestaurantSet
	assigned   *entity.Restaurant
}

// RunFor matches orders in three passes: match all orders, geocode every distinct
// address once, then rank. One order failing never aborts the batch.
func (s *matchingService) RunFor(
	ctx context.Context,
	orders []*entity.Order,
	restaurants []*entity.Restaurant,
	menuItems []*entity.MenuItem,
) ([]entity.MatchResult, error) {
	index := BuildMenuIndex(menuItems)

	restaurantsByID := make(map[uuid.UUID]entity.Restaurant, len(restaurants))
	for _, restaurant := range restaurants {
		if restaurant != nil {
			restaurantsByID[restaurant.ID] = *restaurant
		}
	}

	pending := make([]pendingOrder, 0, len(orders))
	var addresses []entity.Address

	for _, order := range orders {
		if order == nil {
			continue
		}

		if order.CookingRestaurantID != nil {
			restaurant, ok := restaurantsByID[*order.CookingRestaurantID]
			if !ok {
				s.logger.WarnContext(ctx, "Assigned restaurant not found",
					slog.String("order_id", order.ID.String()),
					slog.String("restaurant_id", order.CookingRestaurantID.String()),
				)
				restaurant = entity.Restaurant{ID: *order.CookingRestaurantID}
			}
			pending = append(pending, pendingOrder{order: order, assigned: &restaurant})

			continue
		}

		candidates, err := MatchOrder(order, index)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping order",
				slog.String("order_id", order.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		pending = append(pending, pendingOrder{order: order, candidates: candidates})
		if len(candidates) == 0 {
			continue
		}

		addresses = append(addresses, order.Address)
		for _, restaurant := range candidates {
			addresses = append(addresses, restaurant.Address)
		}
	}

	if len(addresses) > 0 {
		if err := s.geocodes.Preload(ctx, addresses); err != nil {
			s.logger.WarnContext(ctx, "Failed to preload geocode entries", slog.Any("error", err))
		}
	}

	resolver := newBatchResolver(s.geocodes)
	resolver.Prefetch(ctx, addresses, s.workers)

	results := make([]entity.MatchResult, 0, len(pending))
	for _, p := range pending {
		result := entity.MatchResult{OrderID: p.order.ID, Order: *p.order}

		if p.assigned != nil {
			result.Candidates = []entity.Candidate{{Restaurant: *p.assigned}}
			result.Assigned = true
		} else {
			result.Candidates = s.ranker.Rank(ctx, p.order, p.candidates, resolver)
		}

		results = append(results, result)
	}

	s.logger.InfoContext(ctx, "Matching batch finished",
		slog.Int("orders", len(orders)),
		slog.Int("results", len(results)),
	)

	return results, nil
}
