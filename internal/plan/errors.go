package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references a task id
	// that is not in the store.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidOperation is returned for structurally invalid
	// requests, such as linking a task to itself.
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError reports a field value rejected at the store boundary.
// The store is left unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
