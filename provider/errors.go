package provider

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned when the backend answered successfully but
// produced nothing usable (no choices, empty payload).
var ErrNoContent = errors.New("no content generated")

// UnsupportedFunctionalityError reports that the caller requested a
// capability the gateway wire format cannot express (an unknown tool-choice
// kind, a URL-referenced audio/PDF part, an unhandled media type). It is
// raised while building the request, before any network traffic.
type UnsupportedFunctionalityError struct {
	Functionality string
}

func (e *UnsupportedFunctionalityError) Error() string {
	return fmt.Sprintf("unsupported functionality: %s", e.Functionality)
}

// NewUnsupportedFunctionalityError creates an UnsupportedFunctionalityError.
func NewUnsupportedFunctionalityError(functionality string) *UnsupportedFunctionalityError {
	return &UnsupportedFunctionalityError{Functionality: functionality}
}

// APIError is an error reported by the backend itself, either as a non-2xx
// HTTP response or as an explicit error payload inside a stream.
type APIError struct {
	// StatusCode is the HTTP status, or 0 for mid-stream errors.
	StatusCode int
	// Message is the backend-supplied error message.
	Message string
	// Type is the backend error classification, when present.
	Type string
	// Code is the backend error code, when present.
	Code string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}
