package repository

import (
	"context"

	"lifeline-qr-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, db *gorm.DB, account *entity.Account) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Account, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Account, error)
	FindByRole(ctx context.Context, db *gorm.DB, role string) ([]entity.Account, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id uuid.UUID, columns map[string]interface{}) error
	UpdatePassword(ctx context.Context, db *gorm.DB, id uuid.UUID, encoded string) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
