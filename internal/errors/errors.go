package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrManagerNotFound is returned when no manager has the requested name.
	ErrManagerNotFound = errors.New("manager not found")
	// ErrInvalidInput is returned when a request cannot be parsed or validated.
	ErrInvalidInput = errors.New("invalid input")
)

// StoreError wraps any failure reported by the underlying data store.
// Connection loss, constraint violations and malformed statements are not
// distinguished.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for operation op.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err carries a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrManagerNotFound):
		return NewHTTPError(http.StatusUnauthorized, "invalid manager name", "MANAGER_NOT_FOUND")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case IsStoreError(err):
		return NewHTTPError(http.StatusServiceUnavailable, "store unavailable", "STORE_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
