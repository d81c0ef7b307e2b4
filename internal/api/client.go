package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"cantara-client/internal/models"
)

// Error is a non-2xx backend response with its decoded message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Client is the typed boundary to the Cantara backend. Auth is cookie
// based, so a jar is mandatory.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// do issues one JSON round trip. A nil body means no request body; a nil
// out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message = payload.Error
			if apiErr.Message == "" {
				apiErr.Message = payload.Message
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ─── Auth ───

func (c *Client) AuthStatus(ctx context.Context) (*models.AuthStatus, error) {
	var status models.AuthStatus
	if err := c.do(ctx, http.MethodGet, "/api/auth/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Login returns the decoded body even on a 401 so callers can surface the
// server's error text as inline form feedback.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	return c.authPost(ctx, "/api/auth/login", req)
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	return c.authPost(ctx, "/api/auth/register", req)
}

func (c *Client) authPost(ctx context.Context, path string, body any) (*models.AuthResult, error) {
	var result models.AuthResult
	err := c.do(ctx, http.MethodPost, path, body, &result)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return &models.AuthResult{Error: apiErr.Message}, nil
		}
		return nil, err
	}
	return &result, nil
}

// Logout is a GET on the original backend.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/logout", nil, nil)
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
