package relay

import (
	"fmt"
	"net/http"
)

// MissingCredentialError is returned when the upstream API key is not configured.
type MissingCredentialError struct {
	// Name is the environment variable that should hold the key.
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s not set. Add it in Vercel → Settings → Environment Variables", e.Name)
}

// UpstreamError is returned when Cohere answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Status is the status code the relay answers with. Cohere's own code is passed
// through when it is an error code; anything else becomes a 500.
func (e *UpstreamError) Status() int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// NoTextError is returned when a successful Cohere response has no text in any known shape.
type NoTextError struct {
	// Debug is the raw payload, serialized and truncated.
	Debug string
}

func (e *NoTextError) Error() string {
	return "No text found in Cohere response"
}
