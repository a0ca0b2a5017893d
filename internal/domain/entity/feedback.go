package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a create-only contact-form submission. Not tied to an account.
type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Subject     string    `gorm:"type:varchar(255);not null" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
