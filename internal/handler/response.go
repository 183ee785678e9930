package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"pharmacy/internal/errors"
)

// invalidInput marks a bind, validation or path-parameter failure so it maps
// to 400 INVALID_INPUT.
func invalidInput(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", errors.ErrInvalidInput, what, err)
}

// httpError turns a service or input error into an echo error carrying an
// ErrorResponse body.
func httpError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
