package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFileProvided is returned by the image store when the upload has no content.
var ErrNoFileProvided = errors.New("no file uploaded")

// ValidationError reports client input that is missing or malformed.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "validation failed: missing " + strings.Join(e.Missing, ", ")
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// PersistenceError wraps a document store failure. Op names the operation
// that failed and is safe to log; Err is never sent to clients.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewValidationError(missing ...string) *ValidationError {
	return &ValidationError{Missing: missing}
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
