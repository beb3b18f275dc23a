// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Agoric/agoric-dev-mcp/src/internal/helper/gc"
)

// Default tuning for outbound provider calls. Every provider the server talks
// to (Mintscan, Axelarscan, Etherscan) goes through the same client, so the
// retry policy is uniform by construction.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 500 * time.Millisecond
	DefaultTimeout     = 30 * time.Second
)

// Config holds tuning for the shared HTTP client.
//
// Fields:
//   - MaxAttempts: Total attempts per request, including the first (default 3)
//   - BaseDelay: Delay before the first retry; doubles per attempt (default 500ms)
//   - Timeout: Per-request timeout (default 30s)
//   - UserAgent: User-Agent header sent on every request
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Timeout     time.Duration
	UserAgent   string
}

// StatusError is returned when an upstream provider answers with a non-2xx
// status after retries are exhausted. Body carries the upstream message (if
// any) so tool handlers can surface it verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// Client is a JSON-over-HTTP client with uniform retry/backoff applied to
// every call. It is stateless apart from the underlying connection pool and
// safe for concurrent use.
type Client struct {
	http *http.Client
	cfg  Config
}

// New creates a client with defaults applied for any zero Config field.
func New(cfg Config) *Client {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// Retry invokes fn up to maxAttempts times with exponential backoff starting
// at baseDelay. The policy is deliberately uniform: network errors and non-2xx
// statuses are retried alike, matching the behavior of every existing call
// site. It returns fn's last error, or ctx.Err() if the context is cancelled
// while waiting.
func Retry(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func(context.Context) error) error {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	delay := baseDelay
	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= maxAttempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}

// GetJSON performs a GET request and decodes the JSON response into out.
//
// Parameters:
//   - ctx: Context for cancellation
//   - url: Fully-formed request URL
//   - headers: Extra headers (e.g. Authorization); may be nil
//   - out: Destination for the decoded JSON body; may be nil to discard
//
// Returns an error after retries are exhausted; a non-2xx final status is
// reported as a [StatusError] carrying the upstream body.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, out any) error {
	return Retry(ctx, c.cfg.MaxAttempts, c.cfg.BaseDelay, func(ctx context.Context) error {
		return c.doJSON(ctx, http.MethodGet, url, headers, nil, out)
	})
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into out. Parameters mirror [Client.GetJSON]; body is marshaled
// once per attempt.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return Retry(ctx, c.cfg.MaxAttempts, c.cfg.BaseDelay, func(ctx context.Context) error {
		return c.doJSON(ctx, http.MethodPost, url, headers, payload, out)
	})
}

// doJSON performs a single HTTP exchange. The response body is read through a
// pooled buffer to keep allocations flat under bursty tool usage.
func (c *Client) doJSON(ctx context.Context, method, url string, headers map[string]string, body []byte, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(buf.Bytes())}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
