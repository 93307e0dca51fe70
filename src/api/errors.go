package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for classifying API failures. Callers check these
// with errors.Is rather than inspecting status codes.
var (
	// ErrAuth means the server rejected the token (or none was sent).
	ErrAuth = errors.New("authentication failed")

	// ErrNotFound means the requested memory or thread does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork means the server could not be reached at all.
	ErrNetwork = errors.New("network error")

	// ErrSchema means the server answered with a body this client
	// does not understand.
	ErrSchema = errors.New("unexpected response shape")
)

// APIError is returned for any non-success status from the server.
// It unwraps to ErrAuth or ErrNotFound where the status allows it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error %d", e.StatusCode)
	}
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}
