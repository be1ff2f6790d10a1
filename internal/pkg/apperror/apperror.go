package apperror

import "net/http"

// AppError is a custom error type that includes an HTTP status code.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// BadRequest creates a 400 AppError, used for validation failures.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Forbidden creates a 403 AppError.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// NotFound creates a 404 AppError.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}
