package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Status and PaymentMethod hold the entity enum values.
type OrderModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key"`
	FirstName           string     `gorm:"type:varchar(50);not null"`
	LastName            string     `gorm:"type:varchar(50)"`
	PhoneNumber         string     `gorm:"type:varchar(20);not null;index"`
	Address             string     `gorm:"type:varchar(255);not null"`
	Status              int16      `gorm:"type:smallint;not null;default:1;index"`
	PaymentMethod       int16      `gorm:"type:smallint;not null;default:1"`
	Comment             string     `gorm:"type:text"`
	CookingRestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	RegisteredAt        time.Time  `gorm:"not null;index"`
	CalledAt            *time.Time
	DeliveredAt         *time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:decimal(8,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
