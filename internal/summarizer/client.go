// Package summarizer is the HTTP client for the hosted abstractive
// summarization model (Hugging Face Inference API, Pegasus). One blocking
// POST per analysis; failures are typed, never retried here.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/circuitbreaker"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/pkg/metrics"
)

const (
	// DefaultBaseURL is the Hugging Face Inference API router.
	DefaultBaseURL = "https://router.huggingface.co/hf-inference/models/"
	// DefaultModel is tuned for abstractive summarization.
	DefaultModel = "google/pegasus-cnn_dailymail"

	// inputLimit is the model's input budget in characters; bodies are
	// truncated to it before the call.
	inputLimit = 1024
)

// Client calls the inference API. Safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// New builds a client. An empty apiKey yields an unconfigured client whose
// Summarize fails fast with ErrNotConfigured. Empty baseURL/model fall back
// to the defaults.
func New(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // model inference can be slow, cold starts slower
		},
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
	}
}

// Configured reports whether a credential is available.
func (c *Client) Configured() bool { return c.apiKey != "" }

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceOutput struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

type inferenceError struct {
	Error string `json:"error"`
}

// Summarize generates an abstractive summary of text, truncated to the
// model's input budget. Calls run under the circuit breaker; while open the
// breaker error surfaces instead of a network round trip.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	var summary string
	start := time.Now()
	err := c.breaker.Execute(func() error {
		var callErr error
		summary, callErr = c.summarize(ctx, truncate(text, inputLimit))
		return callErr
	})
	metrics.RecordSummarizerLatency(c.model, statusLabel(err), time.Since(start))
	return summary, err
}

func (c *Client) summarize(ctx context.Context, input string) (string, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: input})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.model, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", ErrUnauthorized
	case http.StatusForbidden:
		return "", ErrForbidden
	case http.StatusServiceUnavailable:
		return "", ErrModelWarming
	default:
		return "", &APIError{Status: resp.StatusCode, Message: apiMessage(raw)}
	}

	var outputs []inferenceOutput
	if err := json.Unmarshal(raw, &outputs); err != nil {
		// The API reports a still-loading model as 200 with an error object.
		var apiErr inferenceError
		if json.Unmarshal(raw, &apiErr) == nil && strings.Contains(apiErr.Error, "loading") {
			return "", ErrModelWarming
		}
		return "", &APIError{Status: resp.StatusCode, Message: apiMessage(raw)}
	}

	if len(outputs) > 0 {
		if outputs[0].SummaryText != "" {
			return outputs[0].SummaryText, nil
		}
		if outputs[0].GeneratedText != "" {
			return outputs[0].GeneratedText, nil
		}
	}
	return "Unable to generate summary", nil
}

// Ping checks that the credential can reach the model. A warming model
// (503) counts as reachable: the key works, the model just needs time.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(inferenceRequest{Inputs: "This is a test email. Please summarize it."})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.model, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusServiceUnavailable {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode == http.StatusForbidden {
		return ErrForbidden
	}
	return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
}

func apiMessage(raw []byte) string {
	var apiErr inferenceError
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return "unknown error"
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// truncate keeps the first limit runes so multi-byte text is never cut
// mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
