// Package platform is the HTTP client for the hotel platform REST API. Every
// view in this service is a thin composition of these calls.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrSessionExpired is returned when a request could not be authenticated even
// after a silent token refresh. The session has already been cleared by the
// time callers see it; the only recovery is a new login.
var ErrSessionExpired = errors.New("session expired")

// Credentials is the session context injected into authenticated calls. The
// networking layer never touches session storage directly; a single owner
// (session.Manager) stands behind this interface.
type Credentials interface {
	// AccessToken returns the current bearer token.
	AccessToken() string
	// Refresh performs one silent token refresh and returns the new access
	// token. An error means the session is dead.
	Refresh(ctx context.Context) (string, error)
	// Invalidate clears the session after an unrecoverable auth failure.
	Invalidate(ctx context.Context)
}

// APIError carries a non-2xx platform response. Detail is the server's own
// message (e.g. date overlap, invalid guest count) and is surfaced to the
// user verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform API error (%d): %s", e.StatusCode, e.Detail)
}

// Client is the shared transport for all platform API calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a platform client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// roundTrip performs one request and returns the status code and raw body.
// A non-nil error means the call never produced an HTTP response.
func (c *Client) roundTrip(ctx context.Context, method, path string, body interface{}, bearer string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("platform request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read platform response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// do performs an unauthenticated call and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	status, raw, err := c.roundTrip(ctx, method, path, body, "")
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return apiError(status, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode platform response: %w", err)
		}
	}
	return nil
}

// doAuthed performs an authenticated call. When retryOn401 is set, a 401
// triggers exactly one silent refresh and one retry of the identical request;
// a second 401 is terminal. Without it, a bare 401 kills the session
// immediately (the list endpoint is treated as a session-liveness probe).
func (c *Client) doAuthed(ctx context.Context, creds Credentials, method, path string, body, out interface{}, retryOn401 bool) error {
	status, raw, err := c.roundTrip(ctx, method, path, body, creds.AccessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if !retryOn401 {
			creds.Invalidate(ctx)
			return ErrSessionExpired
		}
		newToken, err := creds.Refresh(ctx)
		if err != nil {
			return ErrSessionExpired
		}
		c.logger.Debug("retrying platform call after token refresh",
			zap.String("method", method), zap.String("path", path))
		status, raw, err = c.roundTrip(ctx, method, path, body, newToken)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			creds.Invalidate(ctx)
			return ErrSessionExpired
		}
	}

	if status < 200 || status >= 300 {
		return apiError(status, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode platform response: %w", err)
		}
	}
	return nil
}

// apiError extracts the platform's {"detail": ...} message from an error body.
func apiError(status int, raw []byte) error {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	detail := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		detail = payload.Detail
		if detail == "" {
			detail = payload.Message
		}
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Detail: detail}
}
