package util

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/summarizer"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/circuitbreaker"
)

// IsRetryableError decides whether redelivering the triggering message can
// help, and names the error class for logging.
// Returns: (isRetryable, errorType)
func IsRetryableError(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	// Summarizer failures: a warming model or an open breaker will recover
	// on their own; credential problems will not.
	if errors.Is(err, summarizer.ErrModelWarming) {
		return true, "summarizer_warming"
	}
	if errors.Is(err, circuitbreaker.ErrOpen) {
		return true, "summarizer_breaker_open"
	}
	if errors.Is(err, summarizer.ErrNotConfigured) {
		return false, "summarizer_not_configured"
	}
	if errors.Is(err, summarizer.ErrUnauthorized) || errors.Is(err, summarizer.ErrForbidden) {
		return false, "summarizer_auth_error"
	}
	var apiErr *summarizer.APIError
	if errors.As(err, &apiErr) {
		// 5xx may be transient; anything else is a request problem.
		return apiErr.Status >= 500, "summarizer_api_error"
	}

	// JSON decode errors: malformed payload, redelivery cannot fix it.
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return false, "json_decode_error"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return false, "json_decode_error"
	}

	// Database errors.
	if errors.Is(err, pgx.ErrNoRows) {
		return false, "record_not_found"
	}
	errStr := err.Error()
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "UNIQUE constraint") {
		return false, "duplicate_key"
	}
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "timeout") {
		return true, "db_connection_error"
	}

	// Network errors.
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true, "network_timeout"
		}
		return true, "network_error"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true, "network_timeout"
		}
		return true, "network_error"
	}

	// Context.
	if errors.Is(err, context.DeadlineExceeded) {
		return true, "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return false, "context_canceled"
	}

	// Unknown: be conservative, do not retry.
	return false, "unknown_error"
}
