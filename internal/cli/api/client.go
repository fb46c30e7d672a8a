package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is used when no API URL is configured. The backend runs
// on port 8000 in local development.
const DefaultBaseURL = "http://localhost:8000"

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out anonymous; expired tokens are
// discovered by the backend, not pre-validated here.
type TokenSource interface {
	Token() (string, error)
}

// Client represents an HTTP client for the Summarly API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client. tokens may be nil for a client that only
// issues unauthenticated requests.
func New(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a single request. No retry, no backoff: each call site owns
// exactly one request and decides presentation of the outcome.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := ulid.Make().String()
	req.Header.Set("X-Request-Id", requestID)

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err == nil && token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newNetworkError(err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// doJSON marshals body as JSON and issues the request.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	contentType := ""

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	return c.do(ctx, method, path, query, reader, contentType, out)
}

// doForm issues a form-encoded POST (the OAuth2 password flow login).
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

// download streams a raw (non-JSON) response body to w.
func (c *Client) download(ctx context.Context, path string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-Id", ulid.Make().String())

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err == nil && token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return newAPIError(resp.StatusCode, respBody)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read file contents: %w", err)
	}

	return nil
}
