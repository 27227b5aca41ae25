// Package api implements the HTTP client for the FEC Analyzer backend:
// one shared request pipeline with the auth interceptors, plus thin typed
// wrappers around each endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fec-analyzer/cli/internal/credentials"
	"github.com/fec-analyzer/cli/internal/logging"
)

// DefaultTimeout bounds every request; on expiry the call fails as a
// network error like any other transport failure.
const DefaultTimeout = 30 * time.Second

// Client is the shared API client. It holds no mutable state beyond its
// fixed configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// Option adjusts client construction.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient builds a client rooted at serverURL + "/api". Every request
// goes through the credential interceptors.
func NewClient(serverURL string, store credentials.Store, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: serverURL + "/api",
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: newAuthTransport(nil, store, log),
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET and decodes the JSON response into out (skipped when
// out is nil).
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// postJSON performs a POST with a JSON body (body may be nil) and decodes
// the response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and maps the response onto the error taxonomy:
// transport failures wrap ErrNetwork, non-2xx statuses become *APIError
// carrying the backend detail string when one was provided.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// parseDetail pulls the "detail" field out of an error body. The backend
// is FastAPI-shaped; anything else yields an empty detail.
func parseDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
