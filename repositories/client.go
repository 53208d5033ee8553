package repositories

import (
	"biscenic-store/config"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// ErrUnauthorized is returned for any 401 from the backend. Callers must
// treat it as fatal to the current admin session: purge the stored token
// and send the user back to login, never retry.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-401 HTTP failure reported by the backend, carrying the
// backend's own message so it can be shown to the user as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the remote commerce API. The backend wraps most payloads
// in {message, data, error}; login and the admin check return their payloads
// bare. That inconsistency is normalized here and nowhere else.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: strings.TrimRight(config.AppConfig.BackendBaseURL, "/"),
		http:    &http.Client{Timeout: config.AppConfig.BackendTimeout},
	}
}

// NewClientWithBase is used by tests to point the client at a local server.
func NewClientWithBase(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   bool            `json:"error"`
}

// getJSON issues a GET and decodes the enveloped payload into out.
func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, token, nil, out, true)
}

// doJSON issues a JSON request. When wrapped is true the response body is
// the standard backend envelope and only its data field is decoded into out;
// when false the body is decoded directly (login, admin check).
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}, wrapped bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, out, wrapped)
}

// doMultipart forwards a multipart form (fields plus uploaded files under
// the "images" field) to the backend, used for product create/update.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, fields url.Values, files []*multipart.FileHeader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return fmt.Errorf("failed to write form field: %w", err)
			}
		}
	}

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return fmt.Errorf("failed to open uploaded file: %w", err)
		}

		part, err := writer.CreateFormFile("images", fileHeader.Filename)
		if err != nil {
			file.Close()
			return fmt.Errorf("failed to create form file: %w", err)
		}

		if _, err := io.Copy(part, file); err != nil {
			file.Close()
			return fmt.Errorf("failed to copy uploaded file: %w", err)
		}
		file.Close()
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, out, true)
}

func (c *Client) send(req *http.Request, out interface{}, wrapped bool) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "request failed"}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	if !wrapped {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode backend envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode backend data: %w", err)
	}
	return nil
}
