package siteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("backend rejected the credentials")
	ErrNotFound     = errors.New("backend resource not found")
	ErrConflict     = errors.New("backend reported a conflict")
	ErrUnavailable  = errors.New("backend unavailable")
)

// APIError is any non-2xx reply from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
}

// Is lets callers match on the status class with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// Client talks to the site management REST backend. It never retries.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

// New builds a client for baseURL with a per-request timeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    parsed,
		HTTPClient: &http.Client{Timeout: timeout},
	}, nil
}

// Get issues a GET and decodes the reply into out.
func (c *Client) Get(ctx context.Context, reqPath string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, reqPath, query, nil, out)
}

func (c *Client) Post(ctx context.Context, reqPath string, body, out any) error {
	return c.do(ctx, http.MethodPost, reqPath, nil, body, out)
}

func (c *Client) Put(ctx context.Context, reqPath string, body, out any) error {
	return c.do(ctx, http.MethodPut, reqPath, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, reqPath string, body, out any) error {
	return c.do(ctx, http.MethodPatch, reqPath, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, reqPath string) error {
	return c.do(ctx, http.MethodDelete, reqPath, nil, nil, nil)
}

// do performs a single request. An empty, 204 or null reply leaves out untouched.
// A *string out accepts a plain-text body.
func (c *Client) do(ctx context.Context, method, reqPath string, query url.Values, body, out any) error {
	u := *c.BaseURL
	u.Path = path.Join(c.BaseURL.Path, reqPath)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, reqPath, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return handleHTTPError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if s, ok := out.(*string); ok && data[0] != '"' {
		*s = string(data)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorBody covers Spring's default error document.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func handleHTTPError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	text := strings.TrimSpace(string(bodyBytes))

	msg := text
	var eb errorBody
	if err := json.Unmarshal(bodyBytes, &eb); err == nil {
		switch {
		case eb.Message != "":
			msg = eb.Message
		case eb.Error != "":
			msg = eb.Error
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
