package model

import (
	"strings"
	"time"
)

// State represents the lifecycle state of an issue or pull request
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// User represents a GitHub account, reduced to the fields we display
type User struct {
	Login string `json:"login"`
}

// Label represents one label attached to an issue
type Label struct {
	Name string `json:"name"`
}

// Comment represents one comment on an issue or pull request
type Comment struct {
	Body string `json:"body"`
	User User   `json:"user"`
}

// IssueRecord represents one GitHub issue or pull request as returned by
// the search API. Repository, Organization and IsPullRequest are not part
// of the payload; they are derived from URL after decoding.
type IssueRecord struct {
	URL         string  `json:"html_url"`
	Title       string  `json:"title"`
	Number      int     `json:"number"`
	State       State   `json:"state"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Labels      []Label `json:"labels"`
	Body        string  `json:"body"`
	CommentsURL string  `json:"comments_url"`

	Repository    string    `json:"-"`
	Organization  string    `json:"-"`
	IsPullRequest bool      `json:"-"`
	Comments      []Comment `json:"-"`
}

// SearchResponse mirrors the envelope of GET /search/issues
type SearchResponse struct {
	TotalCount int            `json:"total_count"`
	Items      []*IssueRecord `json:"items"`
}

// DeriveRepoOrg extracts the organization and repository from an issue
// permalink of the form https://github.com/{org}/{repo}/issues/{number}
// (or /pull/{number} for pull requests) by taking the 4th- and
// 3rd-from-last path segments. A URL with fewer than four segments yields
// empty strings for both; malformed input never panics.
func DeriveRepoOrg(rawURL string) (org, repo string, isPR bool) {
	parts := strings.Split(rawURL, "/")
	for _, p := range parts {
		if p == "pull" {
			isPR = true
			break
		}
	}
	if len(parts) < 4 {
		return "", "", isPR
	}
	return parts[len(parts)-4], parts[len(parts)-3], isPR
}

// Derive fills the Repository, Organization and IsPullRequest fields from
// the record's URL. Safe to call on records with malformed URLs.
func (i *IssueRecord) Derive() {
	i.Organization, i.Repository, i.IsPullRequest = DeriveRepoOrg(i.URL)
}

// HasRepo reports whether both organization and repository could be
// resolved. The two are derived together: both set or both empty.
func (i *IssueRecord) HasRepo() bool {
	return i.Organization != "" && i.Repository != ""
}

// UpdatedTime parses the updated_at timestamp. Malformed timestamps
// degrade to the zero time instead of failing.
func (i *IssueRecord) UpdatedTime() time.Time {
	return parseTime(i.UpdatedAt)
}

// CreatedTime parses the created_at timestamp with the same fallback.
func (i *IssueRecord) CreatedTime() time.Time {
	return parseTime(i.CreatedAt)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LabelNames returns the label names in their original order.
func (i *IssueRecord) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		names = append(names, l.Name)
	}
	return names
}
