package usecase

import (
	"context"
	"errors"

	"lifeline-qr-server/internal/converter"
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
	"lifeline-qr-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidUserID = errors.New("invalid user ID")
	ErrInvalidPrice  = errors.New("invalid price")
)

type OrderUsecase interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreatedOrder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.OrderResponse, error)
}

type orderUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	orderRepo repository.OrderRepository
}

func NewOrderUsecase(db *gorm.DB, log *logrus.Logger, orderRepo repository.OrderRepository) OrderUsecase {
	return &orderUsecase{
		db:        db,
		log:       log,
		orderRepo: orderRepo,
	}
}

func (u *orderUsecase) Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreatedOrder, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	order := &entity.Order{
		ID:           uuid.New(),
		UserID:       userID,
		ProductType:  entity.ProductType(req.ProductType),
		ProductName:  req.ProductName,
		Price:        price,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Quantity:     req.Quantity,
		QRCode:       req.QRCode,
		Status:       entity.OrderStatusPending,
	}

	if err := u.orderRepo.Create(ctx, u.db, order); err != nil {
		// fk_users_orders: user_id must reference a user row.
		if isForeignKeyError(err, "orders") {
			return nil, ErrAccountNotFound
		}
		u.log.Warnf("Failed to create order: %+v", err)
		return nil, err
	}

	return &dto.CreatedOrder{
		ID:     order.ID,
		Status: string(order.Status),
	}, nil
}

func (u *orderUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.OrderResponse, error) {
	orders, err := u.orderRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list orders: %+v", err)
		return nil, err
	}
	return converter.OrdersToResponses(orders), nil
}
