package model

import (
	"testing"
	"time"

	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitInputRejectsNonNumericPrice(t *testing.T) {
	in := UnitInput{UnitNo: "A-101", Price: NumericOf("abc"), RoomType: "studio", HandleBy: "Dara"}

	err := in.Validate()
	var fieldErrs validation.CustomValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "price", fieldErrs[0].Field)
	assert.Equal(t, validation.MsgNumber, fieldErrs[0].Message)
}

func TestUnitInputApplyDefaultsStatus(t *testing.T) {
	in := UnitInput{UnitNo: " A-101 ", Price: NumericOf("350.5"), RoomType: "studio", HandleBy: "Dara"}
	require.NoError(t, in.Validate())

	var u Unit
	in.Apply(&u)
	assert.Equal(t, "A-101", u.UnitNo)
	assert.Equal(t, 350.5, u.Price)
	assert.Equal(t, UnitStatusAvailable, u.Status)
	assert.Nil(t, u.Remarks)
}

func TestUnitInputRejectsUnknownStatus(t *testing.T) {
	in := UnitInput{UnitNo: "A", Price: NumericOf(1), RoomType: "r", HandleBy: "h", Status: "reserved"}
	assert.Error(t, in.Validate())
}

func TestAgentInputValidate(t *testing.T) {
	in := AgentInput{Name: "Sokha"}
	err := in.Validate()
	var fieldErrs validation.CustomValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)

	rating := 5.5
	in = AgentInput{Name: "Sokha", Email: "not-an-email", Phone: "012", Rating: &rating}
	require.ErrorAs(t, in.Validate(), &fieldErrs)
	assert.Len(t, fieldErrs, 2)

	rating = 4.8
	in = AgentInput{Name: "Sokha", Email: "sokha@example.com", Phone: "012", Rating: &rating}
	assert.NoError(t, in.Validate())
}

func TestAgentProjections(t *testing.T) {
	a := Agent{ID: "a1", Name: "Sokha", Phone: "012", Email: "s@example.com", Bio: "bio", Education: "RUPP", IsActive: false}

	summary := a.Summary()
	assert.Equal(t, "s@example.com", summary.Email)
	assert.False(t, summary.IsActive)

	minimal := summary.Minimal()
	assert.Equal(t, "a1", minimal.ID)
	assert.Empty(t, minimal.Email)
	assert.Empty(t, minimal.Bio)

	var nilSummary *AgentSummary
	assert.Nil(t, nilSummary.Minimal())
}

func TestContactInputNormalization(t *testing.T) {
	in := ContactInput{Name: " Dara ", Email: " Dara@Example.COM ", Phone: "012", Message: "  "}

	err := in.Validate()
	var fieldErrs validation.CustomValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "message", fieldErrs[0].Field)

	in.Message = "Call me"
	require.NoError(t, in.Validate())

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	inquiry := in.Normalized().Inquiry(now)
	assert.Equal(t, "dara@example.com", inquiry.Email)
	assert.Equal(t, "Dara", inquiry.Name)
	assert.Equal(t, now, inquiry.CreatedAt)
	assert.NotEmpty(t, inquiry.ID)
}
