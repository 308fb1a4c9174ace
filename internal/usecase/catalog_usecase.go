package usecase

import (
	"context"

	"foodcart/internal/domain/entity"
)

// CatalogUsecase serves the read-only restaurant and menu views of the back office.
type CatalogUsecase interface {
	// ListRestaurants returns all restaurants ordered by name.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// ProductAvailability returns which restaurant sells which product.
	// A restaurant without a menu row for a product counts as not selling it.
	ProductAvailability(ctx context.Context) (*entity.AvailabilityMatrix, error)
}
