package handler

import (
	"errors"

	"github.com/deppfellow/contact-form/internal/errs"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/deppfellow/contact-form/internal/server"
	"github.com/deppfellow/contact-form/internal/service"
	"github.com/deppfellow/contact-form/internal/validation"
	"github.com/labstack/echo/v4"
)

type SubmissionHandler struct {
	Handler
	submissions *service.SubmissionService
}

func NewSubmissionHandler(s *server.Server, submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		Handler:     NewHandler(s),
		submissions: submissions,
	}
}

// Submit handles POST /submit.
func (h *SubmissionHandler) Submit(c echo.Context, form model.FormData) (*model.SubmissionResponse, error) {
	resp, err := h.submissions.Submit(c.Request().Context(), form)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return resp, nil
}

// toHTTPError maps a submission failure to its response status and
// message.
func toHTTPError(err error) error {
	var submitErr *service.SubmitError
	if !errors.As(err, &submitErr) {
		return errs.NewInternalServerError().Wrap(err)
	}

	switch submitErr.Kind {
	case service.KindValidation:
		var fieldErrors []errs.FieldError
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			fe := vErr.FieldError()
			fieldErrors = append(fieldErrors, errs.FieldError{Field: fe.Field, Error: fe.Message})
		}
		return errs.ValidationError(err, fieldErrors...)
	default:
		return errs.NewInternalServerErrorWithMessage(submitErr.Message, nil).Wrap(err)
	}
}
