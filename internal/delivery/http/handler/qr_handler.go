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

// QRHandler serves /api/qr: POST resolves a code to its account (guest badge
// scans), GET fetches the mapping for a patient.
type QRHandler struct {
	qrUsecase usecase.QRUsecase
	validator *validator.CustomValidator
}

func NewQRHandler(qrUsecase usecase.QRUsecase, validator *validator.CustomValidator) *QRHandler {
	return &QRHandler{
		qrUsecase: qrUsecase,
		validator: validator,
	}
}

func (h *QRHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req dto.QRLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	if req.Action != dto.QRActionGetPatient {
		response.BadRequest(w, "Invalid action")
		return
	}

	account, err := h.qrUsecase.LookupAccount(r.Context(), req.QRCode)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidQRCode) {
			response.NotFound(w, "Invalid QR code")
			return
		}
		response.InternalServerError(w, "Failed to resolve QR code")
		return
	}

	response.Success(w, http.StatusOK, response.Payload{"patient": account})
}

func (h *QRHandler) GetMapping(w http.ResponseWriter, r *http.Request) {
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

	mapping, err := h.qrUsecase.GetMappingByPatientID(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrQRMappingNotFound) {
			response.NotFound(w, "QR mapping not found")
			return
		}
		response.InternalServerError(w, "Failed to get QR mapping")
		return
	}

	response.Success(w, http.StatusOK, response.Payload{"mapping": mapping})
}
