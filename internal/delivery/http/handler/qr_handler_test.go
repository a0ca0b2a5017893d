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

type fakeQRUsecase struct {
	lookupFn  func(ctx context.Context, code string) (*dto.AccountResponse, error)
	mappingFn func(ctx context.Context, patientID uuid.UUID) (*dto.QRMappingResponse, error)
}

func (f *fakeQRUsecase) LookupAccount(ctx context.Context, code string) (*dto.AccountResponse, error) {
	return f.lookupFn(ctx, code)
}

func (f *fakeQRUsecase) GetMappingByPatientID(ctx context.Context, patientID uuid.UUID) (*dto.QRMappingResponse, error) {
	return f.mappingFn(ctx, patientID)
}

func TestQRLookupResolvesPatient(t *testing.T) {
	code := uuid.NewString()
	uc := &fakeQRUsecase{
		lookupFn: func(_ context.Context, got string) (*dto.AccountResponse, error) {
			assert.Equal(t, code, got)
			return &dto.AccountResponse{ID: uuid.New(), Role: "patient", Name: "Asha", BloodGroup: "O+"}, nil
		},
	}
	h := NewQRHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.Lookup, http.MethodPost, "/api/qr",
		`{"action":"getPatient","qrCode":"`+code+`"}`)

	assert.Equal(t, http.StatusOK, status)
	patient := envelope["patient"].(map[string]interface{})
	assert.Equal(t, "O+", patient["blood_group"])
}

func TestQRLookupUnknownAction(t *testing.T) {
	h := NewQRHandler(&fakeQRUsecase{}, validator.NewValidator())

	status, envelope := invoke(t, h.Lookup, http.MethodPost, "/api/qr",
		`{"action":"deletePatient","qrCode":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid action", envelope["error"])
}

func TestQRLookupInvalidCode(t *testing.T) {
	uc := &fakeQRUsecase{
		lookupFn: func(context.Context, string) (*dto.AccountResponse, error) {
			return nil, usecase.ErrInvalidQRCode
		},
	}
	h := NewQRHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.Lookup, http.MethodPost, "/api/qr",
		`{"action":"getPatient","qrCode":"garbage"}`)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Invalid QR code", envelope["error"])
}

func TestQRLookupMissingCode(t *testing.T) {
	h := NewQRHandler(&fakeQRUsecase{}, validator.NewValidator())

	status, envelope := invoke(t, h.Lookup, http.MethodPost, "/api/qr",
		`{"action":"getPatient"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "QRCode is required", envelope["error"])
}

func TestQRGetMapping(t *testing.T) {
	patientID := uuid.New()
	uc := &fakeQRUsecase{
		mappingFn: func(_ context.Context, got uuid.UUID) (*dto.QRMappingResponse, error) {
			assert.Equal(t, patientID, got)
			return &dto.QRMappingResponse{ID: uuid.New(), PatientID: patientID, QRCode: uuid.New()}, nil
		},
	}
	h := NewQRHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.GetMapping, http.MethodGet, "/api/qr?patientId="+patientID.String(), "")

	assert.Equal(t, http.StatusOK, status)
	mapping := envelope["mapping"].(map[string]interface{})
	assert.Equal(t, patientID.String(), mapping["patient_id"])
}

func TestQRGetMappingNotFound(t *testing.T) {
	uc := &fakeQRUsecase{
		mappingFn: func(context.Context, uuid.UUID) (*dto.QRMappingResponse, error) {
			return nil, usecase.ErrQRMappingNotFound
		},
	}
	h := NewQRHandler(uc, validator.NewValidator())

	status, envelope := invoke(t, h.GetMapping, http.MethodGet, "/api/qr?patientId="+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "QR mapping not found", envelope["error"])
}

func TestQRGetMappingMissingParam(t *testing.T) {
	h := NewQRHandler(&fakeQRUsecase{}, validator.NewValidator())

	status, envelope := invoke(t, h.GetMapping, http.MethodGet, "/api/qr", "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Patient ID required", envelope["error"])
}
