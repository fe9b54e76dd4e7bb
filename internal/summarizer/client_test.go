package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/circuitbreaker"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", srv.URL+"/", "test-model")
}

func TestNewAppliesDefaults(t *testing.T) {
	c := New("key", "", "")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultModel, c.model)
	assert.True(t, c.Configured())

	assert.False(t, New("", "", "").Configured())
}

func TestSummarizeSuccess(t *testing.T) {
	var gotReq inferenceRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/test-model", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode([]inferenceOutput{{SummaryText: "A short summary."}})
	})

	summary, err := c.Summarize(context.Background(), "Some long email body.")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)
	assert.Equal(t, "Some long email body.", gotReq.Inputs)
}

func TestSummarizeFallsBackToGeneratedText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]inferenceOutput{{GeneratedText: "generated"}})
	})

	summary, err := c.Summarize(context.Background(), "body")
	require.NoError(t, err)
	assert.Equal(t, "generated", summary)
}

func TestSummarizeEmptyOutput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	summary, err := c.Summarize(context.Background(), "body")
	require.NoError(t, err)
	assert.Equal(t, "Unable to generate summary", summary)
}

func TestSummarizeTruncatesInput(t *testing.T) {
	var gotReq inferenceRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode([]inferenceOutput{{SummaryText: "ok"}})
	})

	// Multi-byte runes must be kept whole by the cut.
	_, err := c.Summarize(context.Background(), strings.Repeat("ä", 3000))
	require.NoError(t, err)
	assert.Len(t, []rune(gotReq.Inputs), 1024)
	assert.Equal(t, strings.Repeat("ä", 1024), gotReq.Inputs)
}

func TestSummarizeStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusServiceUnavailable, ErrModelWarming},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.Summarize(context.Background(), "body")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSummarizeModelLoadingResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Model google/pegasus-cnn_dailymail is currently loading","estimated_time":20}`))
	})

	_, err := c.Summarize(context.Background(), "body")
	assert.ErrorIs(t, err, ErrModelWarming)
}

func TestSummarizeServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream unavailable"}`))
	})

	_, err := c.Summarize(context.Background(), "body")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestSummarizeNotConfigured(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	c.apiKey = ""

	_, err := c.Summarize(context.Background(), "body")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, calls)
}

func TestSummarizeBreakerOpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		_, err := c.Summarize(context.Background(), "body")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
	}

	_, err := c.Summarize(context.Background(), "body")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, 5, calls)
}

func TestPing(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"ok", http.StatusOK, nil},
		{"warming model counts as reachable", http.StatusServiceUnavailable, nil},
		{"bad credential", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			err := c.Ping(context.Background())
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestPingNotConfigured(t *testing.T) {
	err := New("", "", "").Ping(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPingUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	var apiErr *APIError
	require.ErrorAs(t, c.Ping(context.Background()), &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcd", 2))
	assert.Equal(t, "日本", truncate("日本語", 2))
}
