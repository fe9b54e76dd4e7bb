package summarizer

import (
	"errors"
	"fmt"
)

// Sentinel failures of the summarization service. They are surfaced
// unmodified as the terminal error of an analysis; callers pick
// user-visible messaging with errors.Is.
var (
	// ErrNotConfigured means no API credential is available. Checked
	// before any extraction work starts.
	ErrNotConfigured = errors.New("summarizer: API key not configured")

	// ErrUnauthorized means the credential was rejected.
	ErrUnauthorized = errors.New("summarizer: invalid API key")

	// ErrForbidden means the credential lacks read permission on the model.
	ErrForbidden = errors.New("summarizer: access denied for API key")

	// ErrModelWarming means the hosted model is still loading. Retryable in
	// principle, but never retried here; the caller decides.
	ErrModelWarming = errors.New("summarizer: model is warming up")
)

// APIError is any other non-success response from the inference API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("summarizer: API error (%d): %s", e.Status, e.Message)
}
