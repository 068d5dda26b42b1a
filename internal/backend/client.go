// internal/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client is a typed client for the remote POS API. It holds no session
// state; every call receives the bearer token of the terminal session
// it acts for. Calls are never retried automatically.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewClient creates a new POS API client
func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// doJSON performs a request with an optional JSON body and decodes the
// 2xx response into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, method, path, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, token, out)
}

// doRaw performs a GET and returns the raw body and content type,
// used for the binary report and PDF endpoints.
func (c *Client) doRaw(ctx context.Context, path, token string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req, token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request to POS API failed: %w", err)
	}
	defer resp.Body.Close()

	c.logCall(req, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) send(req *http.Request, token string, out interface{}) error {
	c.authorize(req, token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to POS API failed: %w", err)
	}
	defer resp.Body.Close()

	c.logCall(req, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) logCall(req *http.Request, status int, start time.Time) {
	if c.log == nil {
		return
	}
	c.log.WithFields(logrus.Fields{
		"method":  req.Method,
		"path":    req.URL.Path,
		"status":  status,
		"latency": time.Since(start),
	}).Debug("POS API call")
}

// decodeError builds an *APIError from a non-2xx response, preferring
// the server's own message over a generic one.
func decodeError(resp *http.Response) error {
	var env errorEnvelope
	// The body may not be JSON at all; a decode failure just leaves
	// the envelope empty and the status speaks for itself.
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return &APIError{
		Status:  resp.StatusCode,
		Message: env.text(),
	}
}
