package book

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of an error for display and
// recovery logic.
type ErrorClass string

const (
	// ErrorClassValidation indicates a field value that failed its
	// construction rule. Always recoverable; the message is shown to the
	// user verbatim.
	ErrorClassValidation ErrorClass = "validation"

	// ErrorClassNotFound indicates a lookup of an unknown contact or
	// phone number.
	ErrorClassNotFound ErrorClass = "not_found"

	// ErrorClassUsage indicates a command invoked with too few arguments.
	ErrorClassUsage ErrorClass = "usage"
)

// Common error codes.
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeContactNotFound = "CONTACT_NOT_FOUND"
	ErrCodePhoneNotFound   = "PHONE_NOT_FOUND"
	ErrCodeArgumentCount   = "ARGUMENT_COUNT"
)

// Error represents a classified error with user-facing context.
type Error struct {
	// Class is the error classification.
	Class ErrorClass `json:"class"`

	// Code is an error code for programmatic handling.
	Code string `json:"code,omitempty"`

	// Field is the field that caused the error, if applicable.
	Field string `json:"field,omitempty"`

	// Message is the human-readable, user-facing message.
	Message string `json:"message"`

	// Err is the underlying error that caused this error.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field=%s)", e.Class, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Class, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error equality checking for errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Class == t.Class && e.Code == t.Code
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field, message string) *Error {
	return &Error{
		Class:   ErrorClassValidation,
		Code:    ErrCodeValidation,
		Field:   field,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with the given code.
func NewNotFoundError(code, message string) *Error {
	return &Error{
		Class:   ErrorClassNotFound,
		Code:    code,
		Message: message,
	}
}

// NewUsageError creates an argument-count error.
func NewUsageError(message string) *Error {
	return &Error{
		Class:   ErrorClassUsage,
		Code:    ErrCodeArgumentCount,
		Message: message,
	}
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// Sentinel errors for lookups. Compared with errors.Is; equality is by
// class and code, so freshly constructed errors of the same kind match.
var (
	ErrContactNotFound = NewNotFoundError(ErrCodeContactNotFound, "Contact not found.")
	ErrPhoneNotFound   = NewNotFoundError(ErrCodePhoneNotFound, "Phone number not found.")
)

// IsValidation returns true if the error is classified as a validation error.
func IsValidation(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ErrorClassValidation
	}
	return false
}

// IsNotFound returns true if the error is classified as a lookup failure.
func IsNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ErrorClassNotFound
	}
	return false
}

// IsUsage returns true if the error is classified as an argument-count error.
func IsUsage(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ErrorClassUsage
	}
	return false
}

// UserMessage extracts the user-facing message from an error. Classified
// errors surface their message verbatim; anything else falls back to the
// plain Error() string.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
