package impl

import (
	"io"
	"log/slog"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newRestaurant(name, address string) entity.Restaurant {
	return entity.Restaurant{
		ID:      uuid.New(),
		Name:    name,
		Address: entity.NewAddress(address),
	}
}

func newMenuItem(restaurant entity.Restaurant, productID uuid.UUID, available bool) *entity.MenuItem {
	return &entity.MenuItem{
		ID:         uuid.New(),
		Restaurant: restaurant,
		ProductID:  productID,
		Available:  available,
	}
}

func newOrder(address string, productIDs ...uuid.UUID) *entity.Order {
	order := &entity.Order{
		ID:        uuid.New(),
		FirstName: "Ivan",
		Address:   entity.NewAddress(address),
		Status:    entity.OrderStatusNew,
	}
	for _, productID := range productIDs {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New(),
			ProductID: productID,
			Quantity:  1,
			Price:     100,
		})
	}

	return order
}

func restaurantIDs(set RestaurantSet) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for _, restaurant := range set.Sorted() {
		ids = append(ids, restaurant.ID)
	}

	return ids
}

func candidateNames(candidates []entity.Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		names = append(names, candidate.Restaurant.Name)
	}

	return names
}
