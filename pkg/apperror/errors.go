package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound         = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized     = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden        = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest       = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer   = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict         = &AppError{Code: http.StatusConflict, Message: "Ledger was modified by another checkout, please retry"}
	ErrInvalidPasscode  = &AppError{Code: http.StatusUnauthorized, Message: "Invalid owner passcode"}
	ErrTokenExpired     = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken     = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
	ErrEmptyCart        = &AppError{Code: http.StatusBadRequest, Message: "Cannot checkout an empty cart"}
	ErrStoreUnavailable = &AppError{Code: http.StatusServiceUnavailable, Message: "Ledger store unavailable"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidInputError creates an unprocessable-entity error for rejected input
// (non-positive dimensions, unknown product, out-of-range cart index).
func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewInvalidCheckoutError creates a bad-request error for an invalid checkout
// attempt (empty cart, unsupported payment method).
func NewInvalidCheckoutError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewPersistenceError creates a service-unavailable error for a failed ledger
// store operation. The underlying cause is logged at the call site, not leaked
// to the client.
func NewPersistenceError(message string) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsConflict reports whether the error is a version conflict from the ledger store.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusConflict
}

// IsNotFound reports whether the error is a not-found error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}

// IsStoreUnavailable reports whether the error is a ledger store persistence failure.
func IsStoreUnavailable(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusServiceUnavailable
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
