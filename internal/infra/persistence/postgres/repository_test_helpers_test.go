package postgres

import (
	"testing"

	"foodcart/internal/domain/entity"
	"foodcart/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(t.Context(), db))

	return db
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   data.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &model.OrderModel{
		ID:                  data.ID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		PhoneNumber:         data.PhoneNumber,
		Address:             data.Address.String(),
		Status:              int16(data.Status),
		PaymentMethod:       int16(data.PaymentMethod),
		Comment:             data.Comment,
		CookingRestaurantID: data.CookingRestaurantID,
		RegisteredAt:        data.RegisteredAt,
		CalledAt:            data.CalledAt,
		DeliveredAt:         data.DeliveredAt,
		Items:               items,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	return &model.RestaurantModel{
		ID:           data.ID,
		Name:         data.Name,
		Address:      data.Address.String(),
		ContactPhone: data.ContactPhone,
	}
}
