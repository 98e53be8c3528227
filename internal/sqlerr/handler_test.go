package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorForeignKey(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		Severity:       "ERROR",
		TableName:      "properties",
		ColumnName:     "agent_id",
		ConstraintName: "properties_agent_id_fkey",
	}

	err := HandleError(fmt.Errorf("insert property: %w", pgErr))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PROPERTY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Agent does not exist", httpErr.Message)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "units",
		ConstraintName: "unique_units_unitno",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "UNIT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Unit with this Unitno already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorNotNull(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "agents", ColumnName: "phone"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "phone", httpErr.Errors[0].Field)
	assert.Equal(t, "AGENT_REQUIRED", httpErr.Code)
}

func TestHandleErrorPassthroughAndFallbacks(t *testing.T) {
	notFound := errs.NewNotFoundError("Property not found", true, nil)
	assert.Same(t, notFound, HandleError(notFound))

	assert.Equal(t, http.StatusNotFound, errs.StatusOf(HandleError(pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, errs.StatusOf(HandleError(fmt.Errorf("find agent: %w", model.ErrRecordNotFound))))
	assert.Equal(t, http.StatusServiceUnavailable, errs.StatusOf(HandleError(&pgconn.PgError{Code: "53300"})))
	assert.Equal(t, http.StatusInternalServerError, errs.StatusOf(HandleError(errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, errs.StatusOf(HandleError(&pgconn.PgError{Code: "XX000"})))
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "property", singular("properties"))
	assert.Equal(t, "CONTACT_INQUIRY", singular("CONTACT_INQUIRIES"))
	assert.Equal(t, "unit", singular("units"))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, Other, MapCode("42P01"))
	assert.Equal(t, SeverityError, MapSeverity("bogus"))
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t, ForeignKeyViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23503"})))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestUniqueColumn(t *testing.T) {
	assert.Equal(t, "email", uniqueColumn("agents_email_key"))
	assert.Equal(t, "unitno", uniqueColumn("unique_units_unitno"))
	assert.Empty(t, uniqueColumn("properties_pkey"))
}
