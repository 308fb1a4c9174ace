package model

import (
	"github.com/google/uuid"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(50);not null"`
	Address      string    `gorm:"type:varchar(100);not null"`
	ContactPhone string    `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// RestaurantMenuItemModel is the GORM-specific struct for the 'restaurant_menu_items' table.
// A restaurant has at most one row per product.
type RestaurantMenuItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_menu_restaurant_product"`
	Restaurant   RestaurantModel `gorm:"foreignKey:RestaurantID"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_menu_restaurant_product;index"`
	Availability bool            `gorm:"not null;default:true;index"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantMenuItemModel) TableName() string {
	return "restaurant_menu_items"
}
