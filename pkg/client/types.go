package client

import "time"

// Account is the API view of a user row; the password column never appears
// in any response.
type Account struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`

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

// EmergencyInfo is the guest-visible subset of a patient profile, shown to
// unauthenticated badge scans.
type EmergencyInfo struct {
	Name              string `json:"name"`
	Age               int    `json:"age"`
	BloodGroup        string `json:"bloodGroup"`
	Allergies         string `json:"allergies"`
	EmergencyContacts string `json:"emergencyContacts"`
}

// EmergencyView filters the account down to the guest-visible fields.
func (a *Account) EmergencyView() EmergencyInfo {
	return EmergencyInfo{
		Name:              a.Name,
		Age:               a.Age,
		BloodGroup:        a.BloodGroup,
		Allergies:         a.Allergies,
		EmergencyContacts: a.EmergencyContacts,
	}
}

type QRMapping struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	QRCode    string    `json:"qr_code"`
	CreatedAt time.Time `json:"created_at"`
}

type MedicalRecord struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Filename    string    `json:"filename"`
	FileType    string    `json:"file_type"`
	FilePath    string    `json:"file_path"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Order struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProductType  string    `json:"product_type"`
	ProductName  string    `json:"product_name"`
	Price        string    `json:"price"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Quantity     int       `json:"quantity"`
	QRCode       string    `json:"qr_code,omitempty"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"order_date"`
}

// apiResult is the shared half of every response envelope.
type apiResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (r *apiResult) fail(message string) {
	r.Success = false
	r.Error = message
}

type UserResult struct {
	apiResult
	User *Account `json:"user,omitempty"`
}

type UsersResult struct {
	apiResult
	Users []Account `json:"users,omitempty"`
}

type PatientResult struct {
	apiResult
	Patient *Account `json:"patient,omitempty"`
}

type MappingResult struct {
	apiResult
	Mapping *QRMapping `json:"mapping,omitempty"`
}

type RecordResult struct {
	apiResult
	Record *MedicalRecord `json:"record,omitempty"`
}

type RecordsResult struct {
	apiResult
	Records []MedicalRecord `json:"records,omitempty"`
}

type OrderResult struct {
	apiResult
	Order *Order `json:"order,omitempty"`
}

type OrdersResult struct {
	apiResult
	Orders []Order `json:"orders,omitempty"`
}

type ResetResult struct {
	apiResult
	Message      string `json:"message,omitempty"`
	TempPassword string `json:"tempPassword,omitempty"`
}

type MessageResult struct {
	apiResult
	Message string `json:"message,omitempty"`
}
