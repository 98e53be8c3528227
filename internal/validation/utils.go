package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Validate returns validator.ValidationErrors, CustomValidationErrors, or nil.
type Validatable interface {
	Validate() error
}

// validate is shared; validator caches struct metadata per instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json names ("agentId") instead of Go names ("AgentID").
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Struct runs tag validation on s.
func Struct(s any) error {
	return validate.Struct(s)
}

// Messages used for hand-written checks.
const (
	MsgRequired = "is required"
	MsgNumber   = "must be a valid number"
	MsgInteger  = "must be a whole number"
)

// CustomValidationError represents a single validation issue for a specific field.
// Used for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// Add appends a field error.
func (c *CustomValidationErrors) Add(field, message string) {
	*c = append(*c, CustomValidationError{Field: field, Message: message})
}

// Require appends a MsgRequired error when present is false.
func (c *CustomValidationErrors) Require(field string, present bool) {
	if !present {
		c.Add(field, MsgRequired)
	}
}

// Err returns nil when no errors were collected, so callers can
// `return errs.Err()` without a typed-nil trap.
func (c CustomValidationErrors) Err() error {
	if len(c) == 0 {
		return nil
	}
	return c
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params, query and body.
//  2. payload.Validate() applies validation rules.
//  3. Failures become a 400 *errs.HTTPError with field-level errors.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	return Check(payload)
}

// Check validates v and converts a failure into a 400 *errs.HTTPError.
// Services call it so the same rules hold for callers that skip the HTTP layer.
func Check(v Validatable) error {
	if err := v.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}
	return nil
}

// bindErrorMessage pulls the human part out of echo's bind errors.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request payload"
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &customValidationErrors):
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}

	case errors.As(err, &validationErrors):
		for _, err := range validationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field(),
				Error: tagMessage(err),
			})
		}

	default:
		return "Validation failed: " + err.Error(), nil
	}

	return summarize(fieldErrors), fieldErrors
}

// summarize names missing fields in the message; other failures are listed
// in the field errors only.
func summarize(fieldErrors []errs.FieldError) string {
	var missing []string
	for _, fe := range fieldErrors {
		if fe.Error == MsgRequired {
			missing = append(missing, fe.Field)
		}
	}

	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return "Validation failed"
}

// tagMessage converts a validator tag failure into a user-friendly message.
func tagMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return MsgRequired

	case "min":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())

	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "url":
		return "must be a valid URL"

	case "uuid", "uuid4":
		return "must be a valid UUID"

	case "dive":
		return "some items are invalid"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}

// Var runs a single tag against a value, e.g. Var(email, "email").
func Var(v any, tag string) error {
	return validate.Var(v, tag)
}
