package errs

import "strings"

// Response is the JSON body written for every failed request.
//
//	{ "error": "Name cannot be empty" }
type Response struct {
	Error string `json:"error"`
}

// FieldError represents a field-level validation error.
// It is recorded in logs, not sent to the client.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), logged only.
//   - Message: human-friendly message, becomes Response.Error.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors"`

	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// Unwrap exposes the underlying cause recorded with Wrap.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Cause returns the underlying error, or nil.
func (e *HTTPError) Cause() error {
	return e.cause
}

// Wrap records the internal error that produced this HTTPError so it can
// be logged. The cause never reaches the response body.
func (e *HTTPError) Wrap(cause error) *HTTPError {
	e.cause = cause
	return e
}

// Body returns the client-facing JSON body for this error.
func (e *HTTPError) Body() Response {
	return Response{Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
