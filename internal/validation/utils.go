package validation

import (
	"github.com/deppfellow/contact-form/internal/errs"
	"github.com/labstack/echo/v4"
)

// InvalidBodyMessage is returned when a request body cannot be decoded.
const InvalidBodyMessage = "Invalid request body"

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// Bind decodes the request body into payload.
//
// payload must be a pointer. Echo returns an error when JSON is malformed
// or a field has the wrong type; both become a 400 with a fixed message
// rather than Echo's internal wording.
func Bind(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(InvalidBodyMessage, nil, nil).Wrap(err)
	}
	return nil
}
