package types

import (
	"errors"
	"fmt"
)

// Duplicate-entity errors. Creating a keyed entity that already exists
// fails with one of these and leaves the container unchanged.
var (
	ErrDuplicateContact = errors.New("contact already exists")
	ErrDuplicatePhone   = errors.New("phone already present")
	ErrDuplicateNote    = errors.New("note already exists")
)

// Not-found errors. Lookups and mutations on an absent target fail with
// one of these and have no effect.
var (
	ErrContactNotFound = errors.New("contact not found")
	ErrPhoneNotFound   = errors.New("phone not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrTagNotFound     = errors.New("tag not found")
)

// ErrValidation matches any *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ErrPersistence matches any *PersistenceError via errors.Is.
var ErrPersistence = errors.New("persistence failed")

// Field kinds carried by ValidationError.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldBirthday = "birthday"
	FieldTag      = "tag"
	FieldTitle    = "title"
	FieldParam    = "parameter"
)

// ValidationError reports malformed raw input for a field or parameter.
// The originating operation has no effect when it is returned.
type ValidationError struct {
	Field  string // field kind, one of the Field constants
	Input  string // raw input as supplied by the caller
	Reason string // human-readable reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match without the concrete value.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, input, reason string) *ValidationError {
	return &ValidationError{Field: field, Input: input, Reason: reason}
}

// PersistenceError reports an unrecoverable I/O failure during save.
// The in-memory state survives; the caller must warn the user that the
// latest changes are not durable.
type PersistenceError struct {
	Op  string // operation that failed, e.g. "save contacts"
	Err error  // underlying cause
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrPersistence) match without the concrete value.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
