package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidFile  = errors.New("invalid file")
	ErrValidation   = errors.New("validation failed")
)

// Error codes carried in JSON error bodies.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeValidation    = "VALIDATION_FAILED"
	CodeDuplicate     = "DUPLICATE_ENTRY"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidFile   = "INVALID_FILE"
	CodeInternalError = "INTERNAL_ERROR"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

// Conflict reports a uniqueness violation. The public API answers 400 for
// duplicates, not 409.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeDuplicate, message, ErrDuplicateKey)
}

// InvalidFile reports an upload rejected by the image step.
func InvalidFile(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidFile, message, ErrInvalidFile)
}

// FieldError is one failing field of a submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failing field of a rejected submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + e.Fields[0].Field + ": " + e.Fields[0].Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns nil when fields is empty so callers can
// return it directly.
func NewValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// IsDuplicate reports whether err is a uniqueness violation from any layer.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsNotFound reports whether err means the target record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
