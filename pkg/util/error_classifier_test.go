package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/summarizer"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/circuitbreaker"
)

func jsonSyntaxError(t *testing.T) error {
	t.Helper()
	var v map[string]any
	err := json.Unmarshal([]byte("{not json"), &v)
	assert.Error(t, err)
	return err
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
		errType   string
	}{
		{"nil", nil, false, ""},
		{"model warming", summarizer.ErrModelWarming, true, "summarizer_warming"},
		{"breaker open", circuitbreaker.ErrOpen, true, "summarizer_breaker_open"},
		{"not configured", summarizer.ErrNotConfigured, false, "summarizer_not_configured"},
		{"unauthorized", summarizer.ErrUnauthorized, false, "summarizer_auth_error"},
		{"forbidden", summarizer.ErrForbidden, false, "summarizer_auth_error"},
		{"api 500", &summarizer.APIError{Status: 500, Message: "boom"}, true, "summarizer_api_error"},
		{"api 502", &summarizer.APIError{Status: 502, Message: "bad gateway"}, true, "summarizer_api_error"},
		{"api 400", &summarizer.APIError{Status: 400, Message: "bad request"}, false, "summarizer_api_error"},
		{"api 429", &summarizer.APIError{Status: 429, Message: "rate limited"}, false, "summarizer_api_error"},
		{"no rows", pgx.ErrNoRows, false, "record_not_found"},
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "analysis_history_pkey"`), false, "duplicate_key"},
		{"db connection refused", errors.New("failed to connect to database: connection refused"), true, "db_connection_error"},
		{"db timeout", errors.New("query timeout exceeded"), true, "db_connection_error"},
		{"deadline exceeded", context.DeadlineExceeded, true, "timeout"},
		{"canceled", context.Canceled, false, "context_canceled"},
		{"unknown", errors.New("something odd"), false, "unknown_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retryable, errType := IsRetryableError(tt.err)
			assert.Equal(t, tt.retryable, retryable)
			assert.Equal(t, tt.errType, errType)
		})
	}
}

func TestIsRetryableErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("analyze email: %w", summarizer.ErrModelWarming)
	retryable, errType := IsRetryableError(wrapped)
	assert.True(t, retryable)
	assert.Equal(t, "summarizer_warming", errType)
}

func TestIsRetryableErrorJSONDecode(t *testing.T) {
	retryable, errType := IsRetryableError(jsonSyntaxError(t))
	assert.False(t, retryable)
	assert.Equal(t, "json_decode_error", errType)
}

func TestIsRetryableErrorURLError(t *testing.T) {
	err := &url.Error{Op: "Post", URL: "https://example.com", Err: errors.New("dial tcp: connection refused")}
	retryable, errType := IsRetryableError(err)
	assert.True(t, retryable)
	// The message mentions "connection", so the db-style string check wins.
	assert.Equal(t, "db_connection_error", errType)
}
