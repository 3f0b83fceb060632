// Package apperr holds the two error families the dashboard reports back to
// users: input problems shown inline next to a form field, and storage
// failures shown as a single notification.
package apperr

import "fmt"

type Kind string

const (
	OutOfRange   Kind = "out_of_range"
	WrongLength  Kind = "wrong_length"
	InvalidShape Kind = "invalid_shape"
)

// ValidationError is a recoverable input error. Field names the form field
// it belongs to (for example "lead_field_07" or "whatsapp").
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Field, e.Kind, e.Message)
}

// PersistenceError wraps a failure from the storage collaborator.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
