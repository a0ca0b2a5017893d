package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/usecase"
	"lifeline-qr-server/pkg/response"
	"lifeline-qr-server/pkg/validator"

	"github.com/google/uuid"
)

// RecordHandler serves /api/records: POST stores upload metadata, GET lists a
// patient's records newest first, DELETE removes one by id.
type RecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *RecordHandler {
	return &RecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Patient ID and filename required")
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPatientID):
			response.BadRequest(w, "Invalid patient ID")
		case errors.Is(err, usecase.ErrAccountNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to add record")
		}
		return
	}

	response.Success(w, http.StatusCreated, response.Payload{"record": record})
}

func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("patientId")
	if rawID == "" {
		response.BadRequest(w, "Patient ID required")
		return
	}

	patientID, err := uuid.Parse(rawID)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	records, err := h.recordUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get records")
		return
	}

	response.Success(w, http.StatusOK, response.Payload{"records": records})
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "Record ID required")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), id); err != nil {
		response.InternalServerError(w, "Failed to delete record")
		return
	}

	response.Success(w, http.StatusOK, response.Payload{"message": "Record deleted"})
}
