package domain

import (
	"errors"  // Sentinel errors
	"sort"    // Stable field ordering
	"strings" // String joining
)

var (
	// ErrUnauthenticated is returned when a request carries no valid credential
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound is returned when a record is absent or not owned by the caller
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique value is already taken
	ErrConflict = errors.New("conflict")
)

// ValidationError carries field-level messages for malformed input
type ValidationError struct {
	Fields map[string][]string `json:"fields"` // Messages keyed by JSON field name
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add appends a message for a field
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no field has failed
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
