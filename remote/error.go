// Package remote decodes structured server-side failures. Services report
// errors as a JSON SerializableError envelope; the decoder turns a non-2xx
// response into an Error that callers can branch on by name, or fails when
// the response cannot be interpreted as such an envelope.
package remote

import (
	"fmt"
)

// SerializableError is the wire envelope for a structured service error.
type SerializableError struct {
	ErrorCode       string            `json:"errorCode"`
	ErrorName       string            `json:"errorName"`
	ErrorInstanceID string            `json:"errorInstanceId"`
	Parameters      map[string]string `json:"parameters"`
}

// Error is a structured failure returned by a remote service, carrying the
// full envelope plus the originating HTTP status. Stubs propagate it
// verbatim so callers may branch on ErrorName.
type Error struct {
	// ErrorCode is the error category name.
	ErrorCode string

	// ErrorName identifies the specific error.
	ErrorName string

	// ErrorInstanceID is an opaque identifier for this occurrence.
	ErrorInstanceID string

	// Parameters carries the error's key/value details.
	Parameters map[string]string

	// Status is the HTTP status code of the response the error was decoded
	// from.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("RemoteException: %s (%s) with instance ID %s", e.ErrorCode, e.ErrorName, e.ErrorInstanceID)
}
