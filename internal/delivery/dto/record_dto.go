package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRecordRequest struct {
	PatientID   string `json:"patientId" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	FileType    string `json:"fileType"`
	FilePath    string `json:"filePath"`
	Description string `json:"description"`
}

type DeleteRecordRequest struct {
	ID string `json:"id" validate:"required"`
}

// CreatedRecord is the create response subset.
type CreatedRecord struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	Description string    `json:"description"`
}

type RecordResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	Filename    string    `json:"filename"`
	FileType    string    `json:"file_type"`
	FilePath    string    `json:"file_path"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
