package postgres

import (
	"context"
	"testing"
	"time"

	"foodcart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_ListOpenOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	restaurantID := uuid.New()

	newOrder := func(status entity.OrderStatus, registered time.Time) *entity.Order {
		return &entity.Order{
			ID:            uuid.New(),
			FirstName:     "Ivan",
			PhoneNumber:   "+79990000000",
			Address:       "Moscow, Tverskaya 1",
			Status:        status,
			PaymentMethod: entity.PaymentMethodCash,
			RegisteredAt:  registered,
			Items: []entity.OrderItem{
				{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, Price: 150.5},
			},
		}
	}

	preparing := newOrder(entity.OrderStatusPreparing, base)
	preparing.CookingRestaurantID = &restaurantID
	newLate := newOrder(entity.OrderStatusNew, base.Add(time.Hour))
	newEarly := newOrder(entity.OrderStatusNew, base)
	done := newOrder(entity.OrderStatusDone, base)
	canceled := newOrder(entity.OrderStatusCanceled, base)

	for _, order := range []*entity.Order{preparing, newLate, newEarly, done, canceled} {
		require.NoError(t, db.Create(fromOrderDomain(order)).Error)
	}

	orders, err := repo.ListOpenOrders(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 3)
	assert.Equal(t, newEarly.ID, orders[0].ID)
	assert.Equal(t, newLate.ID, orders[1].ID)
	assert.Equal(t, preparing.ID, orders[2].ID)

	assert.Equal(t, entity.OrderStatusPreparing, orders[2].Status)
	require.NotNil(t, orders[2].CookingRestaurantID)
	assert.Equal(t, restaurantID, *orders[2].CookingRestaurantID)

	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, newEarly.Items[0].ProductID, orders[0].Items[0].ProductID)
	assert.InDelta(t, 301.0, orders[0].Total(), 1e-9)
}
