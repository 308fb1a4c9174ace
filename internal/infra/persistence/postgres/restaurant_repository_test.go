package postgres

import (
	"context"
	"testing"

	"foodcart/internal/domain/entity"
	"foodcart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestRestaurantRepository_ListRestaurants(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	for _, name := range []string{"Star Burger Lubyanka", "Star Burger Arbat"} {
		require.NoError(t, db.Create(fromRestaurantDomain(&entity.Restaurant{
			ID:      uuid.New(),
			Name:    name,
			Address: "Moscow",
		})).Error)
	}

	restaurants, err := repo.ListRestaurants(context.Background())
	require.NoError(t, err)

	require.Len(t, restaurants, 2)
	assert.Equal(t, "Star Burger Arbat", restaurants[0].Name)
	assert.Equal(t, entity.Address("Moscow"), restaurants[0].Address)
}

func TestMenuItemRepository_ListAvailableMenuItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)

	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "R1", Address: "B1"}
	require.NoError(t, db.Create(fromRestaurantDomain(restaurant)).Error)

	onSale, soldOut := uuid.New(), uuid.New()
	for _, productID := range []uuid.UUID{onSale, soldOut} {
		require.NoError(t, db.Omit(clause.Associations).Create(&model.RestaurantMenuItemModel{
			ID: uuid.New(), RestaurantID: restaurant.ID, ProductID: productID, Availability: true,
		}).Error)
	}
	require.NoError(t, db.Model(&model.RestaurantMenuItemModel{}).
		Where("product_id = ?", soldOut).
		Update("availability", false).Error)

	items, err := repo.ListAvailableMenuItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, onSale, items[0].ProductID)
	assert.True(t, items[0].Available)
	assert.Equal(t, *restaurant, items[0].Restaurant)
}

func TestMenuItemRepository_ListMenuItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuItemRepository(db)

	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "R1", Address: "B1"}
	require.NoError(t, db.Create(fromRestaurantDomain(restaurant)).Error)

	onSale, soldOut := uuid.New(), uuid.New()
	for _, productID := range []uuid.UUID{onSale, soldOut} {
		require.NoError(t, db.Omit(clause.Associations).Create(&model.RestaurantMenuItemModel{
			ID: uuid.New(), RestaurantID: restaurant.ID, ProductID: productID, Availability: true,
		}).Error)
	}
	require.NoError(t, db.Model(&model.RestaurantMenuItemModel{}).
		Where("product_id = ?", soldOut).
		Update("availability", false).Error)

	items, err := repo.ListMenuItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	availability := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		assert.Equal(t, *restaurant, item.Restaurant)
		availability[item.ProductID] = item.Available
	}
	assert.Equal(t, map[uuid.UUID]bool{onSale: true, soldOut: false}, availability)
}
