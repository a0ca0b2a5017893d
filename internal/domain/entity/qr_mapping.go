package entity

import (
	"time"

	"github.com/google/uuid"
)

// QRMapping links a patient account to the opaque code embedded in their
// QR badge. One mapping per patient, created together with the account.
type QRMapping struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	QRCode    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"qr_code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Patient *Account `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (QRMapping) TableName() string {
	return "qr_mappings"
}
