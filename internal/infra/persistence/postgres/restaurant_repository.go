package postgres

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// ListRestaurants retrieves all restaurants ordered by name.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurant := toRestaurantDomain(restaurantM)
		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

// menuItemRepository implements the repository.MenuItemRepository interface.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{
		db: db,
	}
}

// ListAvailableMenuItems retrieves the menu rows currently on sale with their restaurant.
func (repo *menuItemRepository) ListAvailableMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	var itemModels []*model.RestaurantMenuItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Restaurant").
		Where("availability = ?", true).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available menu items")
	}

	return toMenuItemsDomain(itemModels), nil
}

// ListMenuItems retrieves every menu row regardless of availability.
func (repo *menuItemRepository) ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	var itemModels []*model.RestaurantMenuItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Restaurant").
		Order("product_id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return toMenuItemsDomain(itemModels), nil
}

// --- Mapper functions ---

func toMenuItemsDomain(itemModels []*model.RestaurantMenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, &entity.MenuItem{
			ID:         itemM.ID,
			Restaurant: toRestaurantDomain(&itemM.Restaurant),
			ProductID:  itemM.ProductID,
			Available:  itemM.Availability,
		})
	}

	return items
}

func toRestaurantDomain(data *model.RestaurantModel) entity.Restaurant {
	return entity.Restaurant{
		ID:           data.ID,
		Name:         data.Name,
		Address:      entity.Address(data.Address),
		ContactPhone: data.ContactPhone,
	}
}
