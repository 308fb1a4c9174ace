package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is stored as a small integer so that ordering by status follows the order lifecycle.
type OrderStatus int

const (
	OrderStatusNew OrderStatus = iota + 1
	OrderStatusPreparing
	OrderStatusDelivering
	OrderStatusDone
	OrderStatusCanceled
)

// String returns the status name used in API responses.
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusNew:
		return "new"
	case OrderStatusPreparing:
		return "preparing"
	case OrderStatusDelivering:
		return "delivering"
	case OrderStatusDone:
		return "done"
	case OrderStatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// IsOpen reports whether the order still needs a restaurant decision.
func (s OrderStatus) IsOpen() bool {
	return s != OrderStatusDone && s != OrderStatusCanceled
}

// ClosedOrderStatuses are the terminal statuses excluded from matching.
func ClosedOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusDone, OrderStatusCanceled}
}

// PaymentMethod is how the customer pays.
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota + 1
	PaymentMethodCard
)

// String returns the payment method name.
func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCash:
		return "cash"
	case PaymentMethodCard:
		return "card"
	default:
		return "unknown"
	}
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     float64 // unit price at registration time
}

// Order is a customer order waiting for a restaurant.
type Order struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	PhoneNumber   string
	Address       Address
	Status        OrderStatus
	PaymentMethod PaymentMethod
	Comment       string
	Items         []OrderItem

	// CookingRestaurantID is set when a manager has already committed the order to a restaurant.
	CookingRestaurantID *uuid.UUID

	RegisteredAt time.Time
	CalledAt     *time.Time
	DeliveredAt  *time.Time
}

// Total is the sum of quantity times unit price over all items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.Price
	}

	return total
}
