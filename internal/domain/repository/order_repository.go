package repository

import (
	"context"

	"foodcart/internal/domain/entity"
)

// OrderRepository reads orders for the matching batch.
type OrderRepository interface {
	// ListOpenOrders returns orders that are neither done nor canceled, with their items,
	// ordered by status and then registration time.
	ListOpenOrders(ctx context.Context) ([]*entity.Order, error)
}
