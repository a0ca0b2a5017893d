package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=patient doctor"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "a@b.com", Role: "patient"})
	assert.NoError(t, err)
}

func TestMessageRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Role: "patient"})
	require.Error(t, err)
	assert.Equal(t, "Email is required", cv.Message(err))
}

func TestMessageEmailFormat(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "not-an-email", Role: "patient"})
	require.Error(t, err)
	assert.Equal(t, "Email must be a valid email address", cv.Message(err))
}

func TestMessageOneOf(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "a@b.com", Role: "admin"})
	require.Error(t, err)
	assert.Equal(t, "Role must be one of: patient doctor", cv.Message(err))
}

func TestMessageNonValidationError(t *testing.T) {
	cv := NewValidator()

	assert.Equal(t, "Invalid request data", cv.Message(assert.AnError))
}
