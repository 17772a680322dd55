package aig

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNotStrashed = errors.New("network is not structurally hashed")
	ErrBadLiteral  = errors.New("literal references unknown object")
	ErrBadHeader   = errors.New("malformed AAG header")
	ErrBadGate     = errors.New("malformed AND gate definition")
)

// NetworkError provides structured error information for network operations.
type NetworkError struct {
	Op    string // Operation that failed (e.g., "AddAnd", "ReadAAG")
	ID    int32  // Object ID (if applicable)
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s obj %d: %v", e.Op, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}
