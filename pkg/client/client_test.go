package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeline-qr-server/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginEncodesPasswordBeforeTransmission(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"user":{"id":"abc","role":"patient","email":"a@b.com"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result := c.Login(context.Background(), "a@b.com", "secret123")

	assert.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, "a@b.com", result.User.Email)
	assert.Equal(t, password.Encode("secret123"), got["password"])
}

func TestNetworkFailureReturnsEnvelopeNotError(t *testing.T) {
	// Nothing is listening here.
	c := New("http://127.0.0.1:1")

	result := c.Login(context.Background(), "a@b.com", "pw")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Network error:")
}

func TestUpdateUserInjectsID(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true,"message":"User updated successfully"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result := c.UpdateUser(context.Background(), "some-id", map[string]interface{}{"name": "New Name"})

	assert.True(t, result.Success)
	assert.Equal(t, "some-id", got["id"])
	assert.Equal(t, "New Name", got["name"])
}

func TestUpdateUserTranslatesFieldNames(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true,"message":"User updated successfully"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.UpdateUser(context.Background(), "some-id", map[string]interface{}{
		"bloodGroup":        "AB+",
		"emergencyContacts": "9876543210",
	})

	// Callers use the facade's camelCase names; the wire carries columns.
	assert.Equal(t, "AB+", got["blood_group"])
	assert.Equal(t, "9876543210", got["emergency_contacts"])
	assert.NotContains(t, got, "bloodGroup")
	assert.NotContains(t, got, "emergencyContacts")
}

func TestLookupPatientSendsAction(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true,"patient":{"id":"p1","role":"patient","name":"Asha","age":20,"blood_group":"O+"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result := c.LookupPatient(context.Background(), "some-code")

	assert.Equal(t, "getPatient", got["action"])
	assert.Equal(t, "some-code", got["qrCode"])
	require.NotNil(t, result.Patient)
	assert.Equal(t, "O+", result.Patient.BloodGroup)
}

func TestListRecordsEscapesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p 1", r.URL.Query().Get("patientId"))
		w.Write([]byte(`{"success":true,"records":[{"id":"r1","filename":"scan.pdf"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result := c.ListRecords(context.Background(), "p 1")

	assert.True(t, result.Success)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "scan.pdf", result.Records[0].Filename)
}

func TestServerErrorEnvelopePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"error":"Email already registered"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result := c.Register(context.Background(), RegisterInput{
		Email: "a@b.com", Password: "pw", Name: "Asha", Role: "patient",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Email already registered", result.Error)
}

func TestEmergencyViewFiltersProfile(t *testing.T) {
	account := &Account{
		ID:                "p1",
		Role:              "patient",
		Name:              "Asha",
		Age:               20,
		Email:             "asha@example.com",
		BloodGroup:        "O+",
		Allergies:         "penicillin",
		MedicalConditions: "asthma",
		Address:           "12 Lake Rd",
		EmergencyContacts: "9876543210",
	}

	view := account.EmergencyView()
	assert.Equal(t, "Asha", view.Name)
	assert.Equal(t, 20, view.Age)
	assert.Equal(t, "O+", view.BloodGroup)
	assert.Equal(t, "penicillin", view.Allergies)
	assert.Equal(t, "9876543210", view.EmergencyContacts)

	// The guest view must not leak the rest of the profile.
	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "asthma")
	assert.NotContains(t, string(payload), "Lake Rd")
	assert.NotContains(t, string(payload), "asha@example.com")
}
