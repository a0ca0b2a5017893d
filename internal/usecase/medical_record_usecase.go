package usecase

import (
	"context"
	"errors"

	"lifeline-qr-server/internal/converter"
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
	"lifeline-qr-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidPatientID = errors.New("invalid patient ID")

type MedicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.CreatedRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.RecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicalRecordUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
}

func NewMedicalRecordUsecase(db *gorm.DB, log *logrus.Logger, recordRepo repository.MedicalRecordRepository) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:         db,
		log:        log,
		recordRepo: recordRepo,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.CreatedRecord, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrInvalidPatientID
	}

	record := &entity.MedicalRecord{
		ID:          uuid.New(),
		PatientID:   patientID,
		Filename:    req.Filename,
		FileType:    req.FileType,
		FilePath:    req.FilePath,
		Description: req.Description,
	}

	if err := u.recordRepo.Create(ctx, u.db, record); err != nil {
		// fk_users_medical_records: patient_id must reference a user row.
		if isForeignKeyError(err, "medical_records") {
			return nil, ErrAccountNotFound
		}
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	return &dto.CreatedRecord{
		ID:          record.ID,
		Filename:    record.Filename,
		Description: record.Description,
	}, nil
}

func (u *medicalRecordUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.RecordResponse, error) {
	records, err := u.recordRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}
	return converter.RecordsToResponses(records), nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.recordRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}
	return nil
}
