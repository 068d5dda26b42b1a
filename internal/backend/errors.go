// internal/backend/errors.go
package backend

import "fmt"

// APIError is a non-2xx response from the POS API. Message carries the
// server-provided "message" or "error" field when present so callers
// can surface it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error %d", e.Status)
}

// errorEnvelope matches the API's error body
type errorEnvelope struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (env errorEnvelope) text() string {
	if env.Message != "" {
		return env.Message
	}
	return env.Err
}
