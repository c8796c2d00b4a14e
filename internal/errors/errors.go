package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned by repositories; services translate them into
// APIErrors.
var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrAlreadyReviewed   = errors.New("booking already reviewed")
)

// APIError represents a structured API error
type APIError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new API error
func NewAPIError(code, message string, statusCode int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Common API errors
func NotFound(resource string) *APIError {
	return NewAPIError("not_found", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func BadRequest(message string) *APIError {
	return NewAPIError("bad_request", message, http.StatusBadRequest)
}

func Conflict(message string) *APIError {
	return NewAPIError("conflict", message, http.StatusConflict)
}

func InternalError(message string) *APIError {
	return NewAPIError("internal_error", message, http.StatusInternalServerError)
}

func Unauthorized(message string) *APIError {
	return NewAPIError("unauthorized", message, http.StatusUnauthorized)
}

func Forbidden(message string) *APIError {
	return NewAPIError("forbidden", message, http.StatusForbidden)
}

func IdempotencyConflict() *APIError {
	return NewAPIError("idempotency_conflict", "idempotency key already used with different request", http.StatusConflict)
}

func InvalidTransition(from, to string) *APIError {
	return NewAPIError("invalid_transition", fmt.Sprintf("cannot transition from %s to %s", from, to), http.StatusBadRequest)
}

func AlreadyReviewed() *APIError {
	return NewAPIError("already_reviewed", "you have already reviewed this customer for this booking", http.StatusConflict)
}

func DriverNotVerified() *APIError {
	return NewAPIError("driver_not_verified", "driver is not verified", http.StatusForbidden)
}

func LoadFailed() *APIError {
	return NewAPIError("load_failed", "failed to load dashboard data, please refresh", http.StatusInternalServerError)
}
