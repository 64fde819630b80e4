package errs

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrObjectNotFound    = errors.New("object not found")
	ErrValidation        = errors.New("validation failed")
	ErrStorage           = errors.New("storage failure")
	ErrUnsupportedScheme = errors.New("unsupported database url scheme")
	ErrDeleteUnsupported = errors.New("storage backend does not support delete")
)

// ValidationError carries a client facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
