package repository

import (
	"context"

	"lifeline-qr-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, db *gorm.DB, order *entity.Order) error
	// FindByUserID lists orders newest first.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Order, error)
}
