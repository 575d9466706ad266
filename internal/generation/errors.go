package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package and its providers
var (
	// ErrMissingCredential is returned when the provider API key is not configured
	ErrMissingCredential = errors.New("missing API credential")

	// ErrTransport is returned when the HTTP exchange fails before a response is received
	ErrTransport = errors.New("transport error")

	// ErrRemote is matched by every *RemoteError
	ErrRemote = errors.New("remote API error")

	// ErrMalformedResponse is returned when the response envelope or the JSON
	// inside the assistant content cannot be parsed
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyText is returned when there is no study text to send
	ErrEmptyText = errors.New("study text cannot be empty")
)

// RemoteError reports a response whose HTTP status is outside [200, 300).
// Body carries the full response body as received.
type RemoteError struct {
	Service    string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	service := e.Service
	if service == "" {
		service = "remote API"
	}
	return fmt.Sprintf("%s returned HTTP code %d: %s", service, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrRemote) true for any RemoteError.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
