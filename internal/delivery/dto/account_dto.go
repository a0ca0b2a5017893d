package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest carries the registration payload. Password arrives already
// encoded by the client; the server never sees the plaintext.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=patient doctor"`
	Age      int    `json:"age"`

	// Patient profile
	BloodGroup         string `json:"bloodGroup"`
	Allergies          string `json:"allergies"`
	MedicalConditions  string `json:"medicalConditions"`
	RegularMedications string `json:"regularMedications"`
	Address            string `json:"address"`
	EmergencyContacts  string `json:"emergencyContacts"`

	// Doctor profile
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
	Hospital       string `json:"hospital"`
	ContactNumber  string `json:"contactNumber"`
	WorkingHours   string `json:"workingHours"`
}

// RegisteredAccount is the registration response subset.
type RegisteredAccount struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// AccountResponse is a full account view with the password stripped.
type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Role  string    `json:"role"`
	Name  string    `json:"name"`
	Age   int       `json:"age"`
	Email string    `json:"email"`

	BloodGroup         string `json:"blood_group,omitempty"`
	Allergies          string `json:"allergies,omitempty"`
	MedicalConditions  string `json:"medical_conditions,omitempty"`
	RegularMedications string `json:"regular_medications,omitempty"`
	Address            string `json:"address,omitempty"`
	EmergencyContacts  string `json:"emergency_contacts,omitempty"`

	Specialization string `json:"specialization,omitempty"`
	Experience     int    `json:"experience,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
	ContactNumber  string `json:"contact_number,omitempty"`
	WorkingHours   string `json:"working_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
