package service

import (
	"errors"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/model"
)

// notFound builds the 404 for an entity, e.g. PROPERTY_NOT_FOUND.
func notFound(entity string) *errs.HTTPError {
	code := errs.MakeUpperCaseWithUnderscores(entity) + "_NOT_FOUND"
	return errs.NewNotFoundError(entity+" not found", true, &code)
}

// unavailable is returned when the backend an operation needs is not configured.
func unavailable(what string) *errs.HTTPError {
	return errs.NewServiceUnavailableError(what + " backend is not configured")
}

// mapNotFound turns the repository sentinel into a 404 and passes anything
// else through for the global error handler.
func mapNotFound(err error, entity string) error {
	if errors.Is(err, model.ErrRecordNotFound) {
		return notFound(entity)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrRecordNotFound)
}
