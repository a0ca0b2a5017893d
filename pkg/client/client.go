// Package client is the data-access facade the page code talks to: one
// function per server endpoint, returning the decoded envelope. A transport
// failure never surfaces as an error value; it comes back as a result with
// Success=false and a network-error message, so page code only ever branches
// on the envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"lifeline-qr-server/pkg/password"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a facade for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewWithHTTPClient allows supplying a custom transport.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type failer interface {
	fail(message string)
}

// call performs one API request and decodes the envelope into out. Every
// transport or decode failure is folded into the envelope.
func (c *Client) call(ctx context.Context, method, path string, body interface{}, out failer) {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			out.fail("Network error: " + err.Error())
			return
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		out.fail("Network error: " + err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		out.fail("Network error: " + err.Error())
		return
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		out.fail("Network error: " + err.Error())
	}
}

// RegisterInput holds the registration form. Password is plaintext here; the
// facade encodes it before transmission, the server never sees it raw.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Age      int    `json:"age"`

	BloodGroup         string `json:"bloodGroup,omitempty"`
	Allergies          string `json:"allergies,omitempty"`
	MedicalConditions  string `json:"medicalConditions,omitempty"`
	RegularMedications string `json:"regularMedications,omitempty"`
	Address            string `json:"address,omitempty"`
	EmergencyContacts  string `json:"emergencyContacts,omitempty"`

	Specialization string `json:"specialization,omitempty"`
	Experience     int    `json:"experience,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
	ContactNumber  string `json:"contactNumber,omitempty"`
	WorkingHours   string `json:"workingHours,omitempty"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) *UserResult {
	input.Password = password.Encode(input.Password)
	out := &UserResult{}
	c.call(ctx, http.MethodPost, "/api/users", input, out)
	return out
}

func (c *Client) Login(ctx context.Context, email, plainPassword string) *UserResult {
	body := map[string]string{
		"email":    email,
		"password": password.Encode(plainPassword),
	}
	out := &UserResult{}
	c.call(ctx, http.MethodPost, "/api/auth", body, out)
	return out
}

func (c *Client) ResetPassword(ctx context.Context, email string) *ResetResult {
	out := &ResetResult{}
	c.call(ctx, http.MethodPut, "/api/auth", map[string]string{"email": email}, out)
	return out
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) *UserResult {
	out := &UserResult{}
	c.call(ctx, http.MethodGet, "/api/users?email="+url.QueryEscape(email), nil, out)
	return out
}

func (c *Client) GetUserByID(ctx context.Context, id string) *UserResult {
	out := &UserResult{}
	c.call(ctx, http.MethodGet, "/api/users?id="+url.QueryEscape(id), nil, out)
	return out
}

func (c *Client) ListUsersByRole(ctx context.Context, role string) *UsersResult {
	out := &UsersResult{}
	c.call(ctx, http.MethodGet, "/api/users?role="+url.QueryEscape(role), nil, out)
	return out
}

func (c *Client) GetAllDoctors(ctx context.Context) *UsersResult {
	return c.ListUsersByRole(ctx, "doctor")
}

func (c *Client) GetAllPatients(ctx context.Context) *UsersResult {
	return c.ListUsersByRole(ctx, "patient")
}

// updateColumnNames maps the facade's camelCase field names to the server's
// column names, so UpdateUser takes the same keys as RegisterInput.
var updateColumnNames = map[string]string{
	"name":               "name",
	"age":                "age",
	"email":              "email",
	"bloodGroup":         "blood_group",
	"allergies":          "allergies",
	"medicalConditions":  "medical_conditions",
	"regularMedications": "regular_medications",
	"address":            "address",
	"emergencyContacts":  "emergency_contacts",
	"specialization":     "specialization",
	"experience":         "experience",
	"hospital":           "hospital",
	"contactNumber":      "contact_number",
	"workingHours":       "working_hours",
}

// UpdateUser sends a flat object of profile updates for the given id, keyed
// by the same camelCase names RegisterInput uses. Unrecognized keys are
// forwarded as-is and rejected server-side.
func (c *Client) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) *MessageResult {
	body := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		if column, ok := updateColumnNames[k]; ok {
			body[column] = v
		} else {
			body[k] = v
		}
	}
	body["id"] = id

	out := &MessageResult{}
	c.call(ctx, http.MethodPut, "/api/users", body, out)
	return out
}

func (c *Client) GetQRMapping(ctx context.Context, patientID string) *MappingResult {
	out := &MappingResult{}
	c.call(ctx, http.MethodGet, "/api/qr?patientId="+url.QueryEscape(patientID), nil, out)
	return out
}

// LookupPatient resolves a scanned QR code to its owning account.
func (c *Client) LookupPatient(ctx context.Context, qrCode string) *PatientResult {
	body := map[string]string{
		"action": "getPatient",
		"qrCode": qrCode,
	}
	out := &PatientResult{}
	c.call(ctx, http.MethodPost, "/api/qr", body, out)
	return out
}

type RecordInput struct {
	PatientID   string `json:"patientId"`
	Filename    string `json:"filename"`
	FileType    string `json:"fileType,omitempty"`
	FilePath    string `json:"filePath,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c *Client) AddRecord(ctx context.Context, input RecordInput) *RecordResult {
	out := &RecordResult{}
	c.call(ctx, http.MethodPost, "/api/records", input, out)
	return out
}

func (c *Client) ListRecords(ctx context.Context, patientID string) *RecordsResult {
	out := &RecordsResult{}
	c.call(ctx, http.MethodGet, "/api/records?patientId="+url.QueryEscape(patientID), nil, out)
	return out
}

func (c *Client) DeleteRecord(ctx context.Context, id string) *MessageResult {
	out := &MessageResult{}
	c.call(ctx, http.MethodDelete, "/api/records", map[string]string{"id": id}, out)
	return out
}

type OrderInput struct {
	UserID       string `json:"userId"`
	ProductType  string `json:"productType"`
	ProductName  string `json:"productName"`
	Price        string `json:"price"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Quantity     int    `json:"quantity"`
	QRCode       string `json:"qrCode,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, input OrderInput) *OrderResult {
	out := &OrderResult{}
	c.call(ctx, http.MethodPost, "/api/orders", input, out)
	return out
}

func (c *Client) ListOrders(ctx context.Context, userID string) *OrdersResult {
	out := &OrdersResult{}
	c.call(ctx, http.MethodGet, "/api/orders?userId="+url.QueryEscape(userID), nil, out)
	return out
}

type FeedbackInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Client) SubmitFeedback(ctx context.Context, input FeedbackInput) *MessageResult {
	out := &MessageResult{}
	c.call(ctx, http.MethodPost, "/api/feedback", input, out)
	return out
}
