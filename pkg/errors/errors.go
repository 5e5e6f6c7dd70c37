package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("resource already exists")
	ErrInternal   = errors.New("internal server error")
)

// AppError carries a public-safe code and message alongside the wrapped
// internal cause. Handlers surface Code/Message; the cause is for logs only.
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

// FieldError describes a single invalid field in an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates the field errors found while validating one
// payload. It wraps ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func Internal(msg string, err error) *AppError {
	cause := ErrInternal
	if err != nil {
		cause = fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: msg, Err: cause}
}

func Validation(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
