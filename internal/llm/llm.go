package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts the external text-generation provider used for research analysis.
// The credential is passed per call; implementations must not cache it.
type Client interface {
	// Analyze issues exactly one completion request and returns the raw text
	// of the first content segment in the reply.
	Analyze(ctx context.Context, prompt, secret string) (string, error)
	// VerifyKey issues a minimal probe with the given secret. All failures
	// (network, auth, malformed response) collapse to false.
	VerifyKey(ctx context.Context, secret string) bool
}

// ServiceError reports a non-success HTTP status from the external service.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("external service error: status %d", e.Status)
	}
	return fmt.Sprintf("external service error: status %d: %s", e.Status, e.Message)
}

// ErrMalformedResponse indicates a success status whose envelope is missing
// the expected text segment.
var ErrMalformedResponse = errors.New("model response missing text content")
