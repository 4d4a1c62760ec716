// Package errors defines application errors that carry both an HTTP
// status and a business error code.
package errors

import (
	"net/http"

	"freightprint/internal/errors"
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
	// Calculation-related errors
	ErrCalculationNotFound = NewBaseError(
		http.StatusNotFound,
		"CALCULATION_NOT_FOUND",
		"Calculation not found",
		"",
	)

	ErrCalculationForbidden = NewBaseError(
		http.StatusForbidden,
		"CALCULATION_FORBIDDEN",
		"Calculation belongs to another user",
		"",
	)

	ErrCalculationSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"CALCULATION_SAVE_FAILED",
		"Failed to store calculation",
		"",
	)

	ErrInvalidCalculationInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CALCULATION_INPUT",
		"Invalid calculation input",
		"",
	)

	ErrUserIdentityMissing = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_USER_ID",
		"X-User-Id header is required",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DocumentStoreError represents a document-store execution error,
// implementing the AppError interface
type DocumentStoreError struct {
	err     error
	details string
}

// NewDocumentStoreError creates a document-store-related error
func NewDocumentStoreError(err error, details string) AppError {
	return &DocumentStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DocumentStoreError) Error() string {
	return errors.Wrap(e.err, "document store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DocumentStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DocumentStoreError) ErrorCode() string {
	return "DOCUMENT_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *DocumentStoreError) Message() string {
	return "Document store operation failed"
}

// Details returns detailed error information
func (e *DocumentStoreError) Details() string {
	return e.details
}
