package model

import "fmt"

// ValidationError reports an input or policy field violating its contract.
// It is surfaced to the caller as-is, never coerced into a default.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
