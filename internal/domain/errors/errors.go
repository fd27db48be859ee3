// Package errors defines the application error taxonomy: client-local
// validation errors, authorization errors, and remote/transport failures.
package errors

import (
	"net/http"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authorization errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"This action requires an administrator",
		"",
	)

	// Validation errors (client-local, never reach the remote service)
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please fill in all fields",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Please enter a valid price",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Please select a payment method",
		"",
	)

	ErrImageRequired = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_REQUIRED",
		"Please select an image",
		"",
	)

	ErrNotAnImage = NewBaseError(
		http.StatusBadRequest,
		"NOT_AN_IMAGE",
		"Please select an image file",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"Image size must be less than 5MB",
		"",
	)

	ErrConfirmationRequired = NewBaseError(
		http.StatusBadRequest,
		"CONFIRMATION_REQUIRED",
		"Deletion must be explicitly confirmed",
		"",
	)

	// Remote/transport errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"The store is temporarily unavailable. Please try again",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// RemoteError represents a rejection from the remote storefront service,
// implementing the AppError interface.
type RemoteError struct {
	err     error
	details string
}

// NewRemoteError creates a remote-call error
func NewRemoteError(err error, details string) AppError {
	return &RemoteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return errors.Wrap(e.err, "remote call failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *RemoteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return "REMOTE_CALL_FAILED"
}

// Message returns the user-friendly error message
func (e *RemoteError) Message() string {
	return "The operation failed. Please try again"
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying cause for errors.Is checks.
func (e *RemoteError) Unwrap() error {
	return e.err
}

// ClassifyRemote maps a remote rejection onto the error taxonomy. The remote
// service reports authorization failures in its message; that marker is the
// authoritative signal, regardless of what the client checked pre-emptively.
func ClassifyRemote(err error) AppError {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized"):
		return ErrAdminRequired.WithDetails(err.Error())
	case strings.Contains(msg, "unauthenticated"):
		return ErrUnauthenticated.WithDetails(err.Error())
	case strings.Contains(msg, "empty cart"):
		return ErrEmptyCart.WithDetails(err.Error())
	default:
		return NewRemoteError(err, err.Error())
	}
}
