package dto

import (
	"time"

	"github.com/google/uuid"
)

// QR endpoint actions. The POST body selects the operation.
const QRActionGetPatient = "getPatient"

type QRLookupRequest struct {
	Action string `json:"action" validate:"required"`
	QRCode string `json:"qrCode" validate:"required"`
}

type QRMappingResponse struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	QRCode    uuid.UUID `json:"qr_code"`
	CreatedAt time.Time `json:"created_at"`
}
