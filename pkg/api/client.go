// Package api implements the HTTP client for the Stonkie analysis backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/google/uuid"

	errUtils "github.com/stonkie/stonkie/errors"
)

// Client is the backend surface the TUI and commands consume.
// Implementations must be safe for concurrent use.
type Client interface {
	// Analyze asks a free-text question about a ticker and returns the
	// markdown answer.
	Analyze(ctx context.Context, ticker, question string) (string, error)

	// FinancialStatement fetches one of the ticker's statements.
	FinancialStatement(ctx context.Context, ticker string, report ReportType) (*Statement, error)

	// SuggestedQuestions returns ticker-specific starter questions. It
	// falls back to built-in defaults and therefore never fails.
	SuggestedQuestions(ctx context.Context, ticker string) []string

	// Health reports whether the backend is reachable and healthy.
	Health(ctx context.Context) error
}

// HTTPClient talks to the Stonkie backend over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ Client = (*HTTPClient)(nil)

// Option is a functional option for configuring the HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets a transport-level timeout for every request. Zero (the
// default) leaves requests bounded only by their context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// analyzeRequest is the analyze endpoint's request body. The body carries
// only the question; the ticker rides in the URL path.
type analyzeRequest struct {
	Question string `json:"question"`
}

// errorDetail is the backend's error body shape. Logged, never surfaced.
type errorDetail struct {
	Detail string `json:"detail"`
}

// Analyze POSTs the question to /api/{ticker}/analyze and decodes the
// answer. Exactly one request is made per call: no retries, no
// de-duplication. A cancelled context surfaces as context.Canceled so
// callers can tell teardown apart from backend failure.
func (c *HTTPClient) Analyze(ctx context.Context, ticker, question string) (string, error) {
	body, err := json.Marshal(analyzeRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("marshal analyze request: %w", err)
	}

	url := fmt.Sprintf("%s/api/%s/analyze", c.baseURL, ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create analyze request: %w", errors.Join(errUtils.ErrRequestFailed, err))
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	log.Debug("analyze request", "ticker", ticker, "request_id", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("analyze: %w", ctx.Err())
		}
		return "", fmt.Errorf("analyze request: %w", errors.Join(errUtils.ErrRequestFailed, err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read analyze response: %w", errors.Join(errUtils.ErrRequestFailed, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var detail errorDetail
		_ = json.Unmarshal(payload, &detail)
		log.Debug("analyze failed", "ticker", ticker, "request_id", requestID,
			"status", resp.StatusCode, "detail", detail.Detail)
		return "", fmt.Errorf("%w: %d", errUtils.ErrUnexpectedStatus, resp.StatusCode)
	}

	answer, err := decodeAnswer(payload)
	if err != nil {
		return "", err
	}

	log.Debug("analyze response", "ticker", ticker, "request_id", requestID, "bytes", len(payload))
	return answer, nil
}

// Health GETs /api/health. A healthy backend answers 200.
func (c *HTTPClient) Health(ctx context.Context) error {
	if _, err := c.get(ctx, c.baseURL+"/api/health"); err != nil {
		return fmt.Errorf("health check: %w", errors.Join(errUtils.ErrBackendUnhealthy, err))
	}
	return nil
}

// get performs a GET and returns the body of a 200 response.
func (c *HTTPClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", errors.Join(errUtils.ErrRequestFailed, err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", errors.Join(errUtils.ErrRequestFailed, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errUtils.ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", errors.Join(errUtils.ErrRequestFailed, err))
	}

	return body, nil
}
