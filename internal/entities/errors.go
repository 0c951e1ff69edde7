// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrDocumentNotFound signals missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrMemberNotFound signals missing team member.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrAccountNotFound signals missing user account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrMasterItemNotFound signals missing role, unit or category.
	ErrMasterItemNotFound = errors.New("master item not found")
	// ErrNotificationNotFound signals an expired or unknown toast.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrConflict signals a uniqueness violation (number, name, email).
	ErrConflict = errors.New("conflict")
	// ErrInvalidTransition signals a forbidden document status change.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUnavailable signals that the storage backend refuses requests for now.
	ErrUnavailable = errors.New("storage unavailable")
)

// ValidationError carries per-field messages shown next to form inputs.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add records a message for field, keeping the first one.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

// Has reports whether field already failed.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidArgument.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }
