// ABOUTME: HTTP client for the banking API's uniform response envelope
// ABOUTME: Collapses transport and envelope failures into a single error type

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// Envelope is the uniform response wrapper returned by every API call.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData unmarshals the envelope's data object into v.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}

// RequestError is the single failure type raised for any non-success HTTP
// status or "error" envelope. It carries only the server's message; callers
// never branch on HTTP status codes.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// RequestOptions configures a single call. The zero value is an
// unauthenticated GET with no body.
type RequestOptions struct {
	Method     string
	Credential string
	Payload    any
}

// Client issues envelope-wrapped requests against a base URL. There are no
// retries, timeouts, or backoff; every failure is terminal for that call.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the given base URL. An empty baseURL falls back
// to DefaultBaseURL.
func New(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		logger:  logger,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs one call and returns the parsed envelope. A bearer
// Authorization header is attached only when opts.Credential is set. An
// unparseable body is synthesized into a generic error envelope rather than
// surfacing the parse failure.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (*Envelope, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body *bytes.Reader
	if opts.Payload != nil {
		raw, err := json.Marshal(opts.Payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling request payload: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if opts.Credential != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Credential)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		env = Envelope{
			Status:  "error",
			Message: "Invalid server response",
			Data:    json.RawMessage(`{}`),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Status == "error" {
		msg := env.Message
		if msg == "" {
			msg = "Request failed"
		}
		c.logger.Debug("api request failed", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return nil, &RequestError{Message: msg}
	}

	return &env, nil
}
