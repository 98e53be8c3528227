package validation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=agent manager"`
}

func (p *taggedPayload) Validate() error { return Struct(p) }

type customPayload struct {
	fields CustomValidationErrors
}

func (p *customPayload) Validate() error { return p.fields.Err() }

func TestCheckNamesMissingFields(t *testing.T) {
	err := Check(&taggedPayload{Role: "agent"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Missing required fields: name, email", httpErr.Message)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestCheckTagMessages(t *testing.T) {
	err := Check(&taggedPayload{Name: "Dara", Email: "not-an-email", Role: "owner"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "email", Error: "must be a valid email address"},
		{Field: "role", Error: "must be one of: agent manager"},
	}, httpErr.Errors)
}

func TestCheckCustomErrors(t *testing.T) {
	var fields CustomValidationErrors
	fields.Require("unitNo", false)
	fields.Add("price", MsgNumber)

	err := Check(&customPayload{fields: fields})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Missing required fields: unitNo", httpErr.Message)
	assert.Len(t, httpErr.Errors, 2)
}

func TestCheckPasses(t *testing.T) {
	assert.NoError(t, Check(&customPayload{}))
	assert.NoError(t, Check(&taggedPayload{Name: "Dara", Email: "dara@example.com"}))
}
