package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account roles
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Account represents a registered user of either role. The role-specific
// columns are nullable; only the columns for the account's own role are
// ever populated.
type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Role     string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Age      int       `gorm:"not null" json:"age"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"`

	// Patient fields
	BloodGroup         string `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Allergies          string `gorm:"type:text" json:"allergies,omitempty"`
	MedicalConditions  string `gorm:"type:text" json:"medical_conditions,omitempty"`
	RegularMedications string `gorm:"type:text" json:"regular_medications,omitempty"`
	Address            string `gorm:"type:text" json:"address,omitempty"`
	EmergencyContacts  string `gorm:"type:varchar(20)" json:"emergency_contacts,omitempty"`

	// Doctor fields
	Specialization string `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	Experience     int    `gorm:"default:0" json:"experience,omitempty"`
	Hospital       string `gorm:"type:varchar(255)" json:"hospital,omitempty"`
	ContactNumber  string `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	WorkingHours   string `gorm:"type:varchar(50)" json:"working_hours,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships. The cascade lives here: gorm builds the foreign key
	// from the owning side when both sides declare the relation.
	QRMapping      *QRMapping      `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"qr_mapping,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"medical_records,omitempty"`
	Orders         []Order         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

func (Account) TableName() string {
	return "users"
}

// IsPatient reports whether the account holds a medical profile.
func (a *Account) IsPatient() bool {
	return a.Role == RolePatient
}

// IsDoctor reports whether the account holds a professional profile.
func (a *Account) IsDoctor() bool {
	return a.Role == RoleDoctor
}

// ValidRole reports whether role is one of the two fixed account kinds.
func ValidRole(role string) bool {
	return role == RolePatient || role == RoleDoctor
}
