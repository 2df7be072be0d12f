package errors

import (
	"errors"
	"fmt"
)

// Codes carried by AppError. Handlers map these onto HTTP statuses.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeValidation          = "VALIDATION_ERROR"
	CodeGenerationExhausted = "GENERATION_EXHAUSTED"
	CodeForbidden           = "FORBIDDEN"
	CodeInternal            = "INTERNAL_ERROR"
)

var (
	ErrUnauthorized            = errors.New("unauthorized access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(CodeConflict, message, nil)
}

func Validation(message string, err error) *AppError {
	return NewAppError(CodeValidation, message, err)
}

// Internal wraps an unexpected storage or infrastructure failure so the
// underlying detail is carried without being surfaced verbatim to clients.
func Internal(err error) *AppError {
	return NewAppError(CodeInternal, "internal error", err)
}
