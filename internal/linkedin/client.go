// Package linkedin wraps the two LinkedIn share endpoints: the versioned
// Posts API (/rest/posts) and the older UGC API (/v2/ugcPosts).
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alan/devlog-poster/cmd"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.linkedin.com"

// APIError is a non-2xx response from LinkedIn. It carries the status and
// response body for diagnostics; the bearer token never appears in it.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("linkedin responded with status %d: %s", e.Status, e.Body)
}

// Client wraps the LinkedIn REST API
type Client struct {
	httpClient *http.Client
	authorURN  string
	visibility cmd.Visibility
	version    string

	// BaseURL is overridable for tests
	BaseURL string
}

// NewClient creates a LinkedIn client with bearer token authentication
func NewClient(ctx context.Context, token, authorURN string, visibility cmd.Visibility, version string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = 30 * time.Second

	return &Client{
		httpClient: tc,
		authorURN:  authorURN,
		visibility: visibility,
		version:    version,
		BaseURL:    defaultBaseURL,
	}
}

// VerifyToken checks that the access token is usable at all. A failure here
// is a configuration problem, not something a retry can fix.
func (c *Client) VerifyToken(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/v2/userinfo", nil, false)
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}
	return nil
}

// do issues one request. versioned adds the Restli protocol and API version
// headers the share endpoints require. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, versioned bool) (http.Header, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if versioned {
		req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
		req.Header.Set("Linkedin-Version", c.version)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call linkedin: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return resp.Header, nil
}
