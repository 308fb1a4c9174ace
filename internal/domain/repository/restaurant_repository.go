package repository

import (
	"context"

	"foodcart/internal/domain/entity"
)

// RestaurantRepository reads restaurants and their menus.
type RestaurantRepository interface {
	// ListRestaurants returns all restaurants ordered by name.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
}

// MenuItemRepository reads restaurant menu availability.
type MenuItemRepository interface {
	// ListAvailableMenuItems returns menu items currently on sale, with their restaurant loaded.
	ListAvailableMenuItems(ctx context.Context) ([]*entity.MenuItem, error)

	// ListMenuItems returns every menu row, sold-out ones included, with their restaurant loaded.
	ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error)
}
