package httpchannel

import (
	"fmt"
)

// These are some pre-generated constants that can be used to check against
// for the DomainErrors.
const (
	// DomainNewRequest represents an error at the request generation
	// scope.
	DomainNewRequest = "NewRequest"

	// DomainDo represents an error that has occurred at the Do, or
	// execution phase of the request.
	DomainDo = "Do"
)

// TransportError represents an error occurred at the transport level.
type TransportError struct {
	// Domain represents the domain of the error encountered.
	// Simply, this refers to the phase in which the error was
	// generated.
	Domain string

	// Err references the underlying error that caused this error
	// overall.
	Err error
}

// Error implements the error interface.
func (e TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Domain, e.Err)
}

// Unwrap returns the underlying error.
func (e TransportError) Unwrap() error {
	return e.Err
}
