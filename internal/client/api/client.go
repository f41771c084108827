// Package api implements the editor-facing HTTP client: password login,
// content publishing, and media upload. The bearer token obtained at login
// is attached to every editing request.
package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"livecontent/internal/common"
)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Token returns the bearer token obtained at login, empty if not logged in.
func (c *Client) Token() string { return c.accessToken }

// Login exchanges the editor password for a bearer token and remembers it
// for subsequent editing calls.
func (c *Client) Login(ctx context.Context, password string) (int64, error) {
	payload, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return 0, err
	}

	resp, err := c.post(ctx, "/api/auth", payload, false)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return 0, common.ErrInvalidCredentials
	case http.StatusInternalServerError:
		return 0, common.ErrServerMisconfigured
	default:
		return 0, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var body struct {
		Authorized bool   `json:"authorized"`
		Exp        int64  `json:"exp"`
		Token      string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode login response: %w", err)
	}
	if !body.Authorized || body.Token == "" {
		return 0, common.ErrInvalidCredentials
	}

	c.accessToken = body.Token
	return body.Exp, nil
}

// GetContent fetches the current content document and its ETag.
func (c *Client) GetContent(ctx context.Context) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/content", nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	return raw, resp.Header.Get("ETag"), nil
}

// PutContent publishes a full replacement document.
func (c *Client) PutContent(ctx context.Context, doc []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/content", bytes.NewReader(doc))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.withToken(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	return statusToError(resp.StatusCode)
}

// UploadMedia reads a local file, wraps it in a base64 data URL, and uploads
// it. Returns the storage key and dereference URL.
func (c *Client) UploadMedia(ctx context.Context, path string, data []byte) (string, string, error) {
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	payload, err := json.Marshal(map[string]string{
		"dataUrl":  dataURL,
		"filename": filepath.Base(path),
	})
	if err != nil {
		return "", "", err
	}

	resp, err := c.post(ctx, "/api/media", payload, true)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if err := statusToError(resp.StatusCode); err != nil {
		return "", "", err
	}

	var body struct {
		Success bool   `json:"success"`
		Key     string `json:"key"`
		URL     string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", "", fmt.Errorf("decode upload response: %w", err)
	}
	return body.Key, body.URL, nil
}

// MediaURL resolves a media key to an absolute dereference URL.
func (c *Client) MediaURL(key string) string {
	return c.baseURL + "/api/media?key=" + url.QueryEscape(key)
}

func (c *Client) post(ctx context.Context, path string, payload []byte, authed bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		c.withToken(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	return resp, nil
}

func (c *Client) withToken(req *http.Request) {
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
}

func statusToError(status int) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return common.ErrInvalidPayload
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusRequestEntityTooLarge:
		return common.ErrPayloadTooLarge
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusInternalServerError:
		return common.ErrServerMisconfigured
	default:
		return fmt.Errorf("unexpected status: %d", status)
	}
}
