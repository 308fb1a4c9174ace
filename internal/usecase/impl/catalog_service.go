package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	logger         *slog.Logger
	restaurantRepo repository.RestaurantRepository
	menuItemRepo   repository.MenuItemRepository
}

// NewCatalogService creates the restaurant and availability views.
func NewCatalogService(
	logger *slog.Logger,
	restaurantRepo repository.RestaurantRepository,
	menuItemRepo repository.MenuItemRepository,
) usecase.CatalogUsecase {
	return &catalogService{
		logger:         logger,
		restaurantRepo: restaurantRepo,
		menuItemRepo:   menuItemRepo,
	}
}

func (s *catalogService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := s.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list restaurants")
	}

	return restaurants, nil
}

// ProductAvailability builds the matrix over every menu row, sold-out ones included.
// Columns follow restaurant name then ID; rows follow product ID.
func (s *catalogService) ProductAvailability(ctx context.Context) (*entity.AvailabilityMatrix, error) {
	restaurants, err := s.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list restaurants")
	}
	menuItems, err := s.menuItemRepo.ListMenuItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list menu items")
	}

	columns := make([]entity.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if restaurant != nil {
			columns = append(columns, *restaurant)
		}
	}
	slices.SortFunc(columns, compareRestaurants)
	position := make(map[uuid.UUID]int, len(columns))
	for i, restaurant := range columns {
		position[restaurant.ID] = i
	}

	rows := make(map[uuid.UUID][]bool)
	for _, item := range menuItems {
		if item == nil {
			continue
		}
		row, ok := rows[item.ProductID]
		if !ok {
			row = make([]bool, len(columns))
			rows[item.ProductID] = row
		}
		col, known := position[item.Restaurant.ID]
		if !known {
			s.logger.Warn("Menu item references unknown restaurant",
				slog.String("menuItemID", item.ID.String()),
				slog.String("restaurantID", item.Restaurant.ID.String()))

			continue
		}
		row[col] = row[col] || item.Available
	}

	products := make([]entity.ProductAvailability, 0, len(rows))
	for productID, available := range rows {
		products = append(products, entity.ProductAvailability{ProductID: productID, Available: available})
	}
	slices.SortFunc(products, func(a, b entity.ProductAvailability) int {
		return strings.Compare(a.ProductID.String(), b.ProductID.String())
	})

	return &entity.AvailabilityMatrix{Restaurants: columns, Products: products}, nil
}
