// Package gateway holds the HTTP façades the Exhibit client speaks through:
// one thin gateway per entity over a shared JSON client. Gateways never
// retry; a non-2xx response surfaces as an *APIError with the status
// embedded.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/0xGitteth/Exhibit-sub000/internal/localstate"
)

const apiPrefix = "/api/v1"

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	session    *localstate.SessionStore
	sampleData bool
	token      string

	Auth        *AuthGateway
	Users       *UserGateway
	Posts       *PostGateway
	Likes       *LikeGateway
	SavedPosts  *SavedPostGateway
	Communities *CommunityGateway
	Uploads     *UploadGateway
}

func NewClient(baseURL string, session *localstate.SessionStore, sampleData bool, logger *slog.Logger) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		session:    session,
		sampleData: sampleData,
	}
	c.Auth = &AuthGateway{c: c}
	c.Users = &UserGateway{c: c}
	c.Posts = &PostGateway{c: c}
	c.Likes = &LikeGateway{c: c}
	c.SavedPosts = &SavedPostGateway{c: c}
	c.Communities = &CommunityGateway{c: c}
	c.Uploads = &UploadGateway{c: c}
	return c
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Session() *localstate.SessionStore {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{StatusCode: res.StatusCode, Message: errorMessage(res.StatusCode, data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

func errorMessage(status int, data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(status)
}
