package repository

import (
	"context"
	"errors"

	"lifeline-qr-server/internal/domain/entity"
	domainRepo "lifeline-qr-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type qrMappingRepository struct{}

func NewQRMappingRepository() domainRepo.QRMappingRepository {
	return &qrMappingRepository{}
}

func (r *qrMappingRepository) Create(ctx context.Context, db *gorm.DB, mapping *entity.QRMapping) error {
	return db.WithContext(ctx).Create(mapping).Error
}

func (r *qrMappingRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*entity.QRMapping, error) {
	var mapping entity.QRMapping
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *qrMappingRepository) FindAccountByCode(ctx context.Context, db *gorm.DB, code uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).
		Joins("INNER JOIN qr_mappings ON qr_mappings.patient_id = users.id").
		Where("qr_mappings.qr_code = ?", code).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
