package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPhoneNumber is returned when input does not strip down to exactly
// ten digits.
var ErrInvalidPhoneNumber = errors.New("please enter a valid 10-digit phone number")

// ValidationError reports input rejected before any storage was touched.
type ValidationError struct {
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError wraps ErrInvalidPhoneNumber for input.
func NewValidationError(input string) *ValidationError {
	return &ValidationError{Input: input, Err: ErrInvalidPhoneNumber}
}

// StorageOp names a device storage operation.
type StorageOp string

// Storage operations reported in StorageError.Op.
const (
	OpRead   StorageOp = "read"
	OpWrite  StorageOp = "write"
	OpDelete StorageOp = "delete"
)

// StorageError reports a failed device storage operation. State is never
// changed when one is returned.
type StorageError struct {
	Op  StorageOp
	Key Key
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage reports whether err is, or wraps, a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
