// Package jira fetches issues from the Jira REST API.
package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const issuePath = "/rest/api/2/issue/"

// Client wraps the Jira issue endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient constructs a new Jira client. A nil httpClient uses http.DefaultClient.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("jira base url is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg: Config{
			BaseURL:  baseURL,
			User:     cfg.User,
			APIToken: cfg.APIToken,
		},
		httpClient: httpClient,
	}, nil
}

// IssueURL returns the URL requested for ticketID.
func (c *Client) IssueURL(ticketID string) string {
	return c.cfg.BaseURL + issuePath + url.PathEscape(ticketID)
}

// Issue fetches a single issue by key or id.
func (c *Client) Issue(ctx context.Context, ticketID string) (Issue, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return nil, fmt.Errorf("ticket id cannot be empty")
	}

	issueURL := c.IssueURL(ticketID)
	zerolog.Ctx(ctx).Info().Str("url", issueURL).Msg("requesting jira ticket")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, issueURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create jira request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+basicAuth(c.cfg.User, c.cfg.APIToken))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch jira issue: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read jira response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var issue Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("parse jira response: %w", err)
	}
	if issue == nil {
		return nil, fmt.Errorf("parse jira response: empty issue body")
	}
	return issue, nil
}

func basicAuth(user, token string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + token))
}
