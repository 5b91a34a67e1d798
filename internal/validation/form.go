package validation

import (
	"strings"

	"github.com/deppfellow/contact-form/internal/model"
)

// Field length limits, measured in bytes of the untrimmed value.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxMessageLength = 1000
)

// Kind identifies which form rule rejected the input.
type Kind int

const (
	EmptyName Kind = iota + 1
	NameTooLong
	EmptyEmail
	InvalidEmail
	EmailTooLong
	EmptyMessage
	MessageTooLong
)

var kindMessages = map[Kind]string{
	EmptyName:      "Name cannot be empty",
	NameTooLong:    "Name is too long (max 100 characters)",
	EmptyEmail:     "Email cannot be empty",
	InvalidEmail:   "Invalid email format",
	EmailTooLong:   "Email is too long (max 255 characters)",
	EmptyMessage:   "Message cannot be empty",
	MessageTooLong: "Message is too long (max 1000 characters)",
}

var kindFields = map[Kind]string{
	EmptyName:      "name",
	NameTooLong:    "name",
	EmptyEmail:     "email",
	InvalidEmail:   "email",
	EmailTooLong:   "email",
	EmptyMessage:   "message",
	MessageTooLong: "message",
}

// Message returns the client-facing text for the rule.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "Validation failed"
}

// Field returns the form field the rule applies to.
func (k Kind) Field() string {
	return kindFields[k]
}

// Error is the single validation failure reported for a form.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	return e.Kind.Message()
}

// FieldError reports the failure against the offending form field.
func (e *Error) FieldError() CustomValidationError {
	return CustomValidationError{Field: e.Kind.Field(), Message: e.Kind.Message()}
}

// ValidateForm checks the form rules in order and reports the first
// failure. Email validation is syntactic only: an '@' must be present.
func ValidateForm(data model.FormData) error {
	switch {
	case isBlank(data.Name):
		return &Error{Kind: EmptyName}
	case len(data.Name) > MaxNameLength:
		return &Error{Kind: NameTooLong}
	case isBlank(data.Email):
		return &Error{Kind: EmptyEmail}
	case !strings.Contains(data.Email, "@"):
		return &Error{Kind: InvalidEmail}
	case len(data.Email) > MaxEmailLength:
		return &Error{Kind: EmailTooLong}
	case isBlank(data.Message):
		return &Error{Kind: EmptyMessage}
	case len(data.Message) > MaxMessageLength:
		return &Error{Kind: MessageTooLong}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
