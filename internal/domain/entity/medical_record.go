package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord holds upload metadata only; file content lives wherever
// FilePath points (typically a data URI or an object-store key).
type MedicalRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Filename    string    `gorm:"type:varchar(255);not null" json:"filename"`
	FileType    string    `gorm:"type:varchar(50)" json:"file_type"`
	FilePath    string    `gorm:"type:varchar(500)" json:"file_path"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Patient *Account `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
