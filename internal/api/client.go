// Package api implements the HTTP client for the challenge platform's host
// team endpoints. Every request carries the caller's auth token in the
// Authorization header and each call resolves exactly once, returning either
// the decoded payload or an error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// defaultTimeout is the per-request timeout when none is configured.
	defaultTimeout = 30 * time.Second

	// Endpoint paths, relative to the API base URL.
	pathListTeams  = "hosts/challenge_host_team/"
	pathCreateTeam = "hosts/create_challenge_host_team"
	pathRemoveSelf = "hosts/remove_self_from_challenge_host/%d"
	pathInvite     = "hosts/challenge_host_teams/%d/invite"
)

// Client talks to the host team endpoints of a challenge platform instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests to route
// requests to a local server.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the given API base URL and auth token.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListTeams fetches the first page of the caller's host teams.
func (c *Client) ListTeams(ctx context.Context) (TeamPage, error) {
	var page TeamPage
	if err := c.do(ctx, http.MethodGet, c.baseURL+pathListTeams, nil, &page); err != nil {
		return TeamPage{}, err
	}
	return page, nil
}

// Page fetches an arbitrary page by its full URL, as handed out in a page's
// next/previous links. The token header is attached the same way as on every
// other call.
func (c *Client) Page(ctx context.Context, pageURL string) (TeamPage, error) {
	var page TeamPage
	if err := c.do(ctx, http.MethodGet, pageURL, nil, &page); err != nil {
		return TeamPage{}, err
	}
	return page, nil
}

// CreateTeam creates a new host team with the given name and returns it.
func (c *Client) CreateTeam(ctx context.Context, teamName string) (Team, error) {
	body := map[string]string{"team_name": teamName}
	var team Team
	if err := c.do(ctx, http.MethodPost, c.baseURL+pathCreateTeam, body, &team); err != nil {
		return Team{}, err
	}
	return team, nil
}

// RemoveSelf removes the authenticated user from the given team.
func (c *Client) RemoveSelf(ctx context.Context, teamID int) error {
	url := c.baseURL + fmt.Sprintf(pathRemoveSelf, teamID)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

// Invite invites another user to the given team by email address.
func (c *Client) Invite(ctx context.Context, teamID int, email string) error {
	url := c.baseURL + fmt.Sprintf(pathInvite, teamID)
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, url, body, nil)
}

// do issues a single request and decodes the response into out (when out is
// non-nil). Non-2xx responses are decoded into an *Error.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
