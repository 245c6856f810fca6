package eventlog

import "fmt"

// ValidationError represents user-facing validation issues.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a new validation error.
func NewValidationError(format string, args ...interface{}) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}

// StorageError wraps a failure of the underlying store. The core does not
// retry; retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the store operation that produced it.
func NewStorageError(op string, err error) error {
	return StorageError{Op: op, Err: err}
}
