package impl

import (
	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// ErrOrderHasNoItems is returned when an order without line items reaches the matcher.
// Such orders must be rejected at registration.
var ErrOrderHasNoItems = errors.New("order has no line items")

// MatchOrder returns the restaurants that sell every product of the order.
// The result is empty as soon as one product has no seller.
func MatchOrder(order *entity.Order, index *MenuIndex) (RestaurantSet, error) {
	if len(order.Items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	candidates := index.RestaurantsSelling(order.Items[0].ProductID).Clone()
	for _, item := range order.Items[1:] {
		if len(candidates) == 0 {
			break
		}
		candidates = candidates.Intersect(index.RestaurantsSelling(item.ProductID))
	}

	return candidates, nil
}
