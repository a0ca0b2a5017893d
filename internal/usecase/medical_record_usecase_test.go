package usecase

import (
	"context"
	"testing"
	"time"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecordRepo struct {
	createFn          func(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error
	findByPatientIDFn func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error)
	deleteFn          func(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}

func (f *fakeRecordRepo) Create(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error {
	return f.createFn(ctx, db, record)
}

func (f *fakeRecordRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error) {
	return f.findByPatientIDFn(ctx, db, patientID)
}

func (f *fakeRecordRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return f.deleteFn(ctx, db, id)
}

func TestRecordCreateRejectsBadPatientID(t *testing.T) {
	uc := NewMedicalRecordUsecase(nil, silentLogger(), &fakeRecordRepo{})

	_, err := uc.Create(context.Background(), &dto.CreateRecordRequest{
		PatientID: "not-a-uuid",
		Filename:  "scan.pdf",
	})

	assert.ErrorIs(t, err, ErrInvalidPatientID)
}

func TestRecordCreateStoresMetadata(t *testing.T) {
	patientID := uuid.New()
	var stored *entity.MedicalRecord
	repo := &fakeRecordRepo{
		createFn: func(_ context.Context, _ *gorm.DB, record *entity.MedicalRecord) error {
			stored = record
			return nil
		},
	}
	uc := NewMedicalRecordUsecase(nil, silentLogger(), repo)

	created, err := uc.Create(context.Background(), &dto.CreateRecordRequest{
		PatientID:   patientID.String(),
		Filename:    "scan.pdf",
		FileType:    "application/pdf",
		FilePath:    "/uploads/scan.pdf",
		Description: "chest x-ray",
	})

	require.NoError(t, err)
	assert.Equal(t, patientID, stored.PatientID)
	assert.Equal(t, "application/pdf", stored.FileType)
	assert.Equal(t, stored.ID, created.ID)
	assert.Equal(t, "scan.pdf", created.Filename)
}

func TestRecordCreateMapsForeignKeyViolation(t *testing.T) {
	repo := &fakeRecordRepo{
		createFn: func(context.Context, *gorm.DB, *entity.MedicalRecord) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_users_medical_records"}
		},
	}
	uc := NewMedicalRecordUsecase(nil, silentLogger(), repo)

	_, err := uc.Create(context.Background(), &dto.CreateRecordRequest{
		PatientID: uuid.NewString(),
		Filename:  "scan.pdf",
	})

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRecordListByPatient(t *testing.T) {
	patientID := uuid.New()
	now := time.Now()
	repo := &fakeRecordRepo{
		findByPatientIDFn: func(_ context.Context, _ *gorm.DB, got uuid.UUID) ([]entity.MedicalRecord, error) {
			require.Equal(t, patientID, got)
			return []entity.MedicalRecord{
				{ID: uuid.New(), PatientID: patientID, Filename: "newest.pdf", CreatedAt: now},
				{ID: uuid.New(), PatientID: patientID, Filename: "older.pdf", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	uc := NewMedicalRecordUsecase(nil, silentLogger(), repo)

	records, err := uc.ListByPatient(context.Background(), patientID)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "newest.pdf", records[0].Filename)
}

func TestRecordDeletePassesThrough(t *testing.T) {
	id := uuid.New()
	var deleted uuid.UUID
	repo := &fakeRecordRepo{
		deleteFn: func(_ context.Context, _ *gorm.DB, got uuid.UUID) error {
			deleted = got
			return nil
		},
	}
	uc := NewMedicalRecordUsecase(nil, silentLogger(), repo)

	require.NoError(t, uc.Delete(context.Background(), id))
	assert.Equal(t, id, deleted)
}
