package handler

import (
	"context"
	"net/http"
	"testing"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/usecase"
	"lifeline-qr-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRecordUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateRecordRequest) (*dto.CreatedRecord, error)
	listFn   func(ctx context.Context, patientID uuid.UUID) ([]dto.RecordResponse, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRecordUsecase) Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.CreatedRecord, error) {
	return f.createFn(ctx, req)
}

func (f *fakeRecordUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.RecordResponse, error) {
	return f.listFn(ctx, patientID)
}

func (f *fakeRecordUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func TestRecordCreate(t *testing.T) {
	uc := &fakeRecordUsecase{
		createFn: func(_ context.Context, req *dto.CreateRecordRequest) (*dto.CreatedRecord, error) {
			return &dto.CreatedRecord{ID: uuid.New(), Filename: req.Filename, Description: req.Description}, nil
		},
	}
	h := NewRecordHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.Create, http.MethodPost, "/api/records",
		`{"patientId":"`+uuid.NewString()+`","filename":"scan.pdf","description":"chest x-ray"}`)

	assert.Equal(t, http.StatusCreated, status)
	record := envelope["record"].(map[string]interface{})
	assert.Equal(t, "scan.pdf", record["filename"])
}

func TestRecordCreateMissingFilename(t *testing.T) {
	h := NewRecordHandler(&fakeRecordUsecase{}, validator.NewValidator())

	status, envelope := invoke(t, h.Create, http.MethodPost, "/api/records",
		`{"patientId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Patient ID and filename required", envelope["error"])
}

func TestRecordCreateUnknownPatient(t *testing.T) {
	uc := &fakeRecordUsecase{
		createFn: func(context.Context, *dto.CreateRecordRequest) (*dto.CreatedRecord, error) {
			return nil, usecase.ErrAccountNotFound
		},
	}
	h := NewRecordHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.Create, http.MethodPost, "/api/records",
		`{"patientId":"`+uuid.NewString()+`","filename":"scan.pdf"}`)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Patient not found", envelope["error"])
}

func TestRecordList(t *testing.T) {
	patientID := uuid.New()
	uc := &fakeRecordUsecase{
		listFn: func(_ context.Context, got uuid.UUID) ([]dto.RecordResponse, error) {
			assert.Equal(t, patientID, got)
			return []dto.RecordResponse{
				{ID: uuid.New(), PatientID: patientID, Filename: "b.pdf"},
				{ID: uuid.New(), PatientID: patientID, Filename: "a.pdf"},
			}, nil
		},
	}
	h := NewRecordHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.List, http.MethodGet, "/api/records?patientId="+patientID.String(), "")

	assert.Equal(t, http.StatusOK, status)
	records := envelope["records"].([]interface{})
	assert.Len(t, records, 2)
}

func TestRecordListInvalidPatientID(t *testing.T) {
	h := NewRecordHandler(&fakeRecordUsecase{}, validator.NewValidator())

	status, envelope := invoke(t, h.List, http.MethodGet, "/api/records?patientId=xyz", "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid patient ID", envelope["error"])
}

func TestRecordDelete(t *testing.T) {
	id := uuid.New()
	var deleted uuid.UUID
	uc := &fakeRecordUsecase{
		deleteFn: func(_ context.Context, got uuid.UUID) error {
			deleted = got
			return nil
		},
	}
	h := NewRecordHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.Delete, http.MethodDelete, "/api/records",
		`{"id":"`+id.String()+`"}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Record deleted", envelope["message"])
	assert.Equal(t, id, deleted)
}

func TestRecordDeleteInvalidID(t *testing.T) {
	h := NewRecordHandler(&fakeRecordUsecase{}, validator.NewValidator())

	status, envelope := invoke(t, h.Delete, http.MethodDelete, "/api/records", `{"id":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid record ID", envelope["error"])
}
