package usecase

import (
	"context"

	"foodcart/internal/domain/entity"
)

// MatchingUsecase produces, for every open order, the restaurants able to cook it ranked by distance.
type MatchingUsecase interface {
	// Run loads open orders, restaurants and menus from the store and matches them.
	Run(ctx context.Context) ([]entity.MatchResult, error)

	// RunFor matches the given orders against the given restaurants and menu items.
	// Orders are reported in input order.
	RunFor(ctx context.Context, orders []*entity.Order, restaurants []*entity.Restaurant, menuItems []*entity.MenuItem) ([]entity.MatchResult, error)
}
