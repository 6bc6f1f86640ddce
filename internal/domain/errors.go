package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence write failed")
	ErrEncoding    = errors.New("encoding failed")
)

type (
	// ValidationError indicates missing or invalid fields on create/update.
	ValidationError struct {
		Message string
		Err     error
	}

	// NotFoundError indicates the target of an operation does not exist.
	NotFoundError struct {
		Resource string
		ID       string
	}

	// PersistenceWriteError indicates the gateway failed to durably store a collection.
	// The in-memory state is kept regardless.
	PersistenceWriteError struct {
		Collection string
		Err        error
	}

	// EncodingError indicates an uploaded payload could not be encoded for inline storage.
	EncodingError struct {
		Name string
		Err  error
	}
)

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Collection, e.Err)
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Name, e.Err)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *PersistenceWriteError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *PersistenceWriteError) Unwrap() error {
	return e.Err
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps a validation failure (typically ozzo-validation Errors).
func NewValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

// NewNotFoundError reports a missing resource by kind and id.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}
