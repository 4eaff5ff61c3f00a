package shared

import (
	"errors"
	"net/http"
)

// Error codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeConflict   = "CONFLICT"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"

	// Repository error codes
	ErrCodePresetNotFound = "PRESET_NOT_FOUND"
	ErrCodePresetExists   = "PRESET_EXISTS"
)

// AppError represents an application error with status code and error code
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(key string, value interface{}) *AppError {
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// ErrorResponse represents an error response structure
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToResponse converts AppError to ErrorResponse
func (e *AppError) ToResponse() ErrorResponse {
	details := e.Details
	if details == nil {
		details = make(map[string]interface{})
	}

	return ErrorResponse{
		Error:   http.StatusText(e.StatusCode),
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// Predefined errors
var (
	ErrValidation = NewAppError(ErrCodeValidation, "Validation error", http.StatusBadRequest)
	ErrNotFound   = NewAppError(ErrCodeNotFound, "Resource not found", http.StatusNotFound)
	ErrConflict   = NewAppError(ErrCodeConflict, "Resource conflict", http.StatusConflict)
	ErrInternal   = NewAppError(ErrCodeInternal, "Internal server error", http.StatusInternalServerError)
	ErrBadRequest = NewAppError(ErrCodeBadRequest, "Bad request", http.StatusBadRequest)

	// Repository errors
	ErrPresetNotFound = NewAppError(ErrCodePresetNotFound, "Preset not found", http.StatusNotFound)
	ErrPresetExists   = NewAppError(ErrCodePresetExists, "Preset already exists", http.StatusConflict)
)

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// ToAppError converts an error to AppError
func ToAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	// Wrap in a fresh internal error; the predefined ones stay immutable.
	return NewAppError(ErrCodeInternal, "Internal server error", http.StatusInternalServerError).WithError(err)
}
