package impl

import (
	"slices"
	"strings"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantSet is a set of restaurants keyed by ID.
type RestaurantSet map[uuid.UUID]entity.Restaurant

// Intersect returns a new set with the restaurants present in both sets.
func (s RestaurantSet) Intersect(other RestaurantSet) RestaurantSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	result := make(RestaurantSet, len(small))
	for id, restaurant := range small {
		if _, ok := large[id]; ok {
			result[id] = restaurant
		}
	}

	return result
}

// Clone returns an independent copy of the set.
func (s RestaurantSet) Clone() RestaurantSet {
	result := make(RestaurantSet, len(s))
	for id, restaurant := range s {
		result[id] = restaurant
	}

	return result
}

// Sorted returns the restaurants ordered by name, then ID.
func (s RestaurantSet) Sorted() []entity.Restaurant {
	restaurants := make([]entity.Restaurant, 0, len(s))
	for _, restaurant := range s {
		restaurants = append(restaurants, restaurant)
	}
	slices.SortFunc(restaurants, compareRestaurants)

	return restaurants
}

func compareRestaurants(a, b entity.Restaurant) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}

	return strings.Compare(a.ID.String(), b.ID.String())
}

// MenuIndex answers which restaurants currently sell a product.
// It is built once per batch from the available menu items.
type MenuIndex struct {
	byProduct map[uuid.UUID]RestaurantSet
}

// BuildMenuIndex indexes the available menu items by product.
// Unavailable rows are ignored, duplicate rows are harmless, input order does not matter.
func BuildMenuIndex(items []*entity.MenuItem) *MenuIndex {
	index := &MenuIndex{byProduct: make(map[uuid.UUID]RestaurantSet)}

	for _, item := range items {
		if item == nil || !item.Available {
			continue
		}

		restaurants, ok := index.byProduct[item.ProductID]
		if !ok {
			restaurants = make(RestaurantSet)
			index.byProduct[item.ProductID] = restaurants
		}
		restaurants[item.Restaurant.ID] = item.Restaurant
	}

	return index
}

// RestaurantsSelling returns the restaurants selling a product.
// The returned set is shared with the index and must not be modified.
func (idx *MenuIndex) RestaurantsSelling(productID uuid.UUID) RestaurantSet {
	if restaurants, ok := idx.byProduct[productID]; ok {
		return restaurants
	}

	return RestaurantSet{}
}
