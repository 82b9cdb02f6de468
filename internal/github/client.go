// Package github is the gateway to the GitHub REST API. It fetches the
// issues and pull requests shown by the dashboard and posts issue state
// changes. Everything else in the application treats it as an opaque
// collaborator.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/andy/gitdash/internal/filter"
	"github.com/andy/gitdash/internal/model"
)

const defaultBaseURL = "https://api.github.com"

// Client talks to the GitHub REST API on behalf of one user
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	token      string
	userAgent  string
}

// New creates a client for the given user and personal access token
func New(username, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		username:   username,
		token:      token,
		userAgent:  "gitdash",
	}
}

// NewWithBaseURL is used by tests to point the client at a local server.
func NewWithBaseURL(username, token, baseURL string) *Client {
	c := New(username, token)
	c.baseURL = baseURL
	return c
}

// FetchIssues returns the issues and pull requests assigned to the user
// in the given state, sorted newest-first, along with the API's total
// count. For open items the comment list is fetched as well; a failed
// comment fetch leaves the list empty rather than failing the whole
// refresh.
func (c *Client) FetchIssues(ctx context.Context, state model.State) ([]*model.IssueRecord, int, error) {
	query := fmt.Sprintf("q=assignee:%s+state:%s&per_page=100", c.username, state)
	resp, err := c.search(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching %s issues: %w", state, err)
	}

	for _, item := range resp.Items {
		item.Derive()
		if item.State == model.StateOpen && item.CommentsURL != "" {
			comments, err := c.fetchComments(ctx, item.CommentsURL)
			if err != nil {
				log.Printf("comment fetch for #%d failed: %v", item.Number, err)
				comments = nil
			}
			item.Comments = comments
		}
	}

	return filter.SortByRecency(resp.Items), resp.TotalCount, nil
}

// FetchReviewRequests returns the open pull requests where the user is a
// requested reviewer, sorted newest-first, with the API's total count.
func (c *Client) FetchReviewRequests(ctx context.Context) ([]*model.IssueRecord, int, error) {
	query := fmt.Sprintf("q=type:pr+review-requested:%s+state:open", c.username)
	resp, err := c.search(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching review requests: %w", err)
	}

	for _, item := range resp.Items {
		item.Derive()
	}

	return filter.SortByRecency(resp.Items), resp.TotalCount, nil
}

// SetIssueState transitions one issue to the given state. The call is
// idempotent on the GitHub side; closing a closed issue succeeds.
func (c *Client) SetIssueState(ctx context.Context, org, repo string, number int, state model.State) error {
	if org == "" || repo == "" {
		return fmt.Errorf("issue #%d has no resolvable organization/repository", number)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d", c.baseURL, org, repo, number)
	body, err := json.Marshal(map[string]string{"state": string(state)})
	if err != nil {
		return fmt.Errorf("encoding state change: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("updating %s/%s#%d: %w", org, repo, number, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("updating %s/%s#%d: unexpected status %s", org, repo, number, resp.Status)
	}
	return nil
}

func (c *Client) search(ctx context.Context, rawQuery string) (*model.SearchResponse, error) {
	url := fmt.Sprintf("%s/search/issues?%s", c.baseURL, rawQuery)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var decoded model.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &decoded, nil
}

func (c *Client) fetchComments(ctx context.Context, commentsURL string) ([]model.Comment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, commentsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var comments []model.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		return nil, fmt.Errorf("decoding comments: %w", err)
	}
	return comments, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
}
