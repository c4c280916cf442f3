package web

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

// httpError maps the errors of the use cases to HTTP errors.
// entity names what the request addressed, e.g. "user", and is used in the not found message.
func httpError(err error, entity string) error {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErrs):
		return echo.NewHTTPError(http.StatusBadRequest, validationMessages(validationErrs)).SetInternal(err)
	case errors.Is(err, domain.ErrUnknownOwner):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "user of the post does not exist").SetInternal(err)
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, entity+" not found").SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}

func validationMessages(errs validator.ValidationErrors) map[string]string {
	msgs := make(map[string]string, len(errs))
	for _, e := range errs {
		msgs[e.Field()] = "failed on the '" + e.Tag() + "' rule"
	}

	return msgs
}
