package postgres

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// ListOpenOrders retrieves every order that is not closed, with its items.
func (repo *orderRepository) ListOpenOrders(ctx context.Context) ([]*entity.Order, error) {
	closed := entity.ClosedOrderStatuses()
	closedValues := make([]int16, 0, len(closed))
	for _, status := range closed {
		closedValues = append(closedValues, int16(status))
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("status NOT IN ?", closedValues).
		Order("status ASC").
		Order("registered_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list open orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &entity.Order{
		ID:                  data.ID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		PhoneNumber:         data.PhoneNumber,
		Address:             entity.Address(data.Address),
		Status:              entity.OrderStatus(data.Status),
		PaymentMethod:       entity.PaymentMethod(data.PaymentMethod),
		Comment:             data.Comment,
		Items:               items,
		CookingRestaurantID: data.CookingRestaurantID,
		RegisteredAt:        data.RegisteredAt,
		CalledAt:            data.CalledAt,
		DeliveredAt:         data.DeliveredAt,
	}
}
