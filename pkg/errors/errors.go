package errors

import (
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrNotFound           = NewNotFoundError("resource", "resource not found")
	ErrAlreadyExists      = NewAlreadyExistsError("resource", "resource already exists")
	ErrInvalidCredentials = NewInvalidCredentialsError()
	ErrUnauthenticated    = NewUnauthenticatedError("authentication required")
	ErrInternal           = NewInternalError("internal server error", nil)
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status code for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// AlreadyExistsError represents a uniqueness-constraint conflict.
// Field names the conflicting column (e.g. "email").
type AlreadyExistsError struct {
	Field   string
	Message string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(field, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

// HTTPStatus returns the HTTP status code for this error
func (e *AlreadyExistsError) HTTPStatus() int {
	return http.StatusForbidden
}

// InvalidCredentialsError is returned on any signin failure. The message
// is identical whether the email is unknown or the password is wrong, so
// a response cannot be used to enumerate registered emails.
type InvalidCredentialsError struct{}

// NewInvalidCredentialsError creates a new invalid credentials error
func NewInvalidCredentialsError() *InvalidCredentialsError {
	return &InvalidCredentialsError{}
}

// Error implements the error interface
func (e *InvalidCredentialsError) Error() string {
	return "credentials incorrect"
}

// HTTPStatus returns the HTTP status code for this error
func (e *InvalidCredentialsError) HTTPStatus() int {
	return http.StatusForbidden
}

// UnauthenticatedError represents a missing, malformed, or expired bearer token
type UnauthenticatedError struct {
	Message string
}

// NewUnauthenticatedError creates a new unauthenticated error
func NewUnauthenticatedError(message string) *UnauthenticatedError {
	return &UnauthenticatedError{Message: message}
}

// Error implements the error interface
func (e *UnauthenticatedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthenticated"
}

// HTTPStatus returns the HTTP status code for this error
func (e *UnauthenticatedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser interface for errors that carry an HTTP status code
type HTTPStatuser interface {
	HTTPStatus() int
}
