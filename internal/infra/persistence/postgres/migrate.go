package postgres

import (
	"context"

	"foodcart/internal/errors"
	"foodcart/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of every persistence model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.GeocodeEntryModel{},
		&model.RestaurantModel{},
		&model.RestaurantMenuItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
