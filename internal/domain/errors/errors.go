// Package errors defines the errors the API renders with a status and a stable code.
package errors

import (
	"net/http"

	"foodcart/internal/errors"
)

// AppError is an error that knows how it is presented to API clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
}

// BaseError is a sentinel AppError. Wrap it with WrapMessage to add context
// while keeping errors.As able to find it.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

var (
	// Geocoding
	ErrInvalidAddress       = NewBaseError(http.StatusBadRequest, "INVALID_ADDRESS", "Address must not be empty")
	ErrGeocodeRefreshFailed = NewBaseError(http.StatusServiceUnavailable, "GEOCODE_REFRESH_FAILED", "Could not schedule geocode refresh")

	// Matching
	ErrMatchingFailed = NewBaseError(http.StatusInternalServerError, "MATCHING_FAILED", "Could not load orders for matching")

	// Catalog
	ErrCatalogUnavailable = NewBaseError(http.StatusInternalServerError, "CATALOG_UNAVAILABLE", "Could not load restaurants and menus")

	// Auth
	ErrUnauthorized = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid access token")
	ErrForbidden    = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Manager role required")

	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// StorageError reports a failed write. The driver error stays reachable through Unwrap.
type StorageError struct {
	op  string
	err error
}

// NewStorageError wraps err returned while performing op.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{op: op, err: err}
}

func (e *StorageError) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.err
}

func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

func (e *StorageError) Message() string {
	return "Storage operation failed"
}
