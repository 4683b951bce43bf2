// Package api is the HTTP client for the Confide backend. Every call is
// context-aware, attaches the bearer token when one is present, and decodes
// the canonical response envelope into typed results. The client never
// caches and never retries; failed calls are reported to the caller and may
// be re-attempted manually.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the current bearer token, if any. session.Store
// satisfies this.
type TokenSource interface {
	Token() (string, bool)
}

// Options configures the API client.
type Options struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client performs HTTP calls to the Confide REST API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// noToken is used when no TokenSource is supplied; all calls go out
// unauthenticated.
type noToken struct{}

func (noToken) Token() (string, bool) { return "", false }

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = noToken{}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
	}
}

// envelope is the canonical response shape for every endpoint. Payloads ride
// in data; application-level failures carry success=false plus an error
// message. Anything that does not fit this shape is a DecodeError.
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// do issues one request and decodes the enveloped response into out (which
// may be nil when the caller only cares about success).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The Authorization header is attached iff a token exists at call time.
	// No token means the header is absent entirely.
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &DecodeError{Path: path, Cause: err}
	}
	if !env.Success {
		return &APIError{Path: path, Status: resp.StatusCode, Message: env.Error}
	}
	if out != nil {
		if len(env.Data) == 0 {
			return &DecodeError{Path: path, Cause: fmt.Errorf("missing data payload")}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &DecodeError{Path: path, Cause: err}
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
