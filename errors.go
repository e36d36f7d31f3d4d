package dialogue

import (
	"fmt"
)

// PreconditionError reports a violated call-site precondition: a required
// argument that was absent, or a path template variable with no value. It
// carries the offending parameter name so callers and logs can identify it.
type PreconditionError struct {
	// Param is the name of the parameter that violated the precondition.
	Param string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s {param: %s}", e.Message, e.Param)
}

// NewPreconditionError returns a PreconditionError for the named parameter.
func NewPreconditionError(message, param string) error {
	return &PreconditionError{Param: param, Message: message}
}
