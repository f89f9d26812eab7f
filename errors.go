package cc1101

import (
	"fmt"

	"github.com/hatstand/cc1101/units"
)

// DomainError reports a physical value that does not fit its register. It
// is returned before anything is written to the chip.
type DomainError = units.DomainError

// ValidationError reports caller supplied arguments that violate length or
// range constraints. It is returned before any bus transfer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// TransportError wraps a failed bus transfer. If a burst write fails the
// register contents are indeterminate and should be read back.
type TransportError struct {
	Op     string
	Header byte
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s (header %#02x): %v", e.Op, e.Header, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
