package repository

import (
	"context"

	"lifeline-qr-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error
	// FindByPatientID lists records newest first.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
