package sqlerr

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped Code for a given error, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a raw pgconn.PgError into our Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// actions names the second half of an error code per constraint kind.
var actions = map[Code]string{
	ForeignKeyViolation: "NOT_FOUND",
	UniqueViolation:     "ALREADY_EXISTS",
	NotNullViolation:    "REQUIRED",
	CheckViolation:      "INVALID",
	InvalidText:         "INVALID",
}

// errorCode builds <DOMAIN>_<ACTION>, e.g. PROPERTY_NOT_FOUND for an insert
// into properties that references a missing agent.
func (e *Error) errorCode() string {
	domain := "RECORD"
	if e.TableName != "" {
		domain = singular(strings.ToUpper(e.TableName))
	}

	action, ok := actions[e.Code]
	if !ok {
		action = "ERROR"
	}
	return domain + "_" + action
}

// entity names what the error is about: the referenced entity for an
// "<x>_id" column, else the table's singular.
func (e *Error) entity() string {
	column := strings.ToLower(e.ColumnName)
	if strings.HasSuffix(column, "_id") {
		return humanize(strings.TrimSuffix(column, "_id"))
	}
	if e.TableName != "" {
		return humanize(singular(e.TableName))
	}
	return "record"
}

// userMessage is safe to show as-is.
func (e *Error) userMessage() string {
	field := humanize(e.ColumnName)

	switch e.Code {
	case ForeignKeyViolation:
		return "The referenced " + e.entity() + " does not exist"

	case UniqueViolation:
		identifier := "identifier"
		if column := uniqueColumn(e.ConstraintName); column != "" {
			identifier = humanize(column)
		}
		return "A " + e.entity() + " with this " + identifier + " already exists"

	case NotNullViolation:
		if field == "" {
			field = "field"
		}
		return "The " + field + " is required"

	case CheckViolation:
		if field == "" {
			return "One or more values do not meet required conditions"
		}
		return "The " + field + " value does not meet required conditions"

	case InvalidText:
		return "One or more values have an invalid format"
	}

	return "An error occurred while processing your request"
}

// HTTPError maps the error onto the response shape. Constraint violations
// are the client's fault (400); everything else is a 500, except a full
// connection table which is a 503.
func (e *Error) HTTPError() *errs.HTTPError {
	code := e.errorCode()
	message := e.userMessage()

	switch e.Code {
	case ForeignKeyViolation:
		return errs.NewBadRequestError(message, false, &code, nil, nil)

	case NotNullViolation:
		fieldErrors := []errs.FieldError{{Field: strings.ToLower(e.ColumnName), Error: "is required"}}
		return errs.NewBadRequestError(message, true, &code, fieldErrors, nil)

	case UniqueViolation, CheckViolation, InvalidText:
		return errs.NewBadRequestError(message, true, &code, nil, nil)

	case TooManyConnections:
		return errs.NewServiceUnavailableError("The database is busy, try again shortly")
	}

	return errs.NewInternalServerError()
}

// singular handles the table names used by this schema
// (properties, agents, units, contact_inquiries, hero_slides).
func singular(name string) string {
	upper := strings.ToUpper(name) == name
	lower := strings.ToLower(name)

	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 3:
		lower = lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "s") && len(lower) > 1:
		lower = lower[:len(lower)-1]
	}

	if upper {
		return strings.ToUpper(lower)
	}
	return lower
}

// humanize turns snake_case into Title Case ("unit_no" -> "Unit No").
// A Caser keeps state, so each call gets its own.
func humanize(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// uniqueColumn infers the column from a constraint name, following either
// unique_<table>_<column> or <table>_<column>_key.
func uniqueColumn(constraint string) string {
	if rest, ok := strings.CutPrefix(constraint, "unique_"); ok {
		if i := strings.LastIndex(rest, "_"); i >= 0 {
			return rest[i+1:]
		}
	}

	if m := uniqueKeyPattern.FindStringSubmatch(constraint); len(m) > 1 {
		return m[1]
	}
	return ""
}

// HandleError converts a low-level storage error into an HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: see Error.HTTPError
//   - a missing row: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr).HTTPError()
	}

	if errors.Is(err, model.ErrRecordNotFound) || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
