package repository

import (
	"context"

	"lifeline-qr-server/internal/domain/entity"
	domainRepo "lifeline-qr-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct{}

func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(ctx context.Context, db *gorm.DB, order *entity.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order("order_date DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
