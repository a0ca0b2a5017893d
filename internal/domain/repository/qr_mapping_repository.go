package repository

import (
	"context"

	"lifeline-qr-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QRMappingRepository interface {
	Create(ctx context.Context, db *gorm.DB, mapping *entity.QRMapping) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*entity.QRMapping, error)
	// FindAccountByCode joins qr_mappings to users and returns the owning
	// account, or nil when the code maps to nothing.
	FindAccountByCode(ctx context.Context, db *gorm.DB, code uuid.UUID) (*entity.Account, error)
}
