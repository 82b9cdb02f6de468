package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDeriveRepoOrg(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantOrg string
		wantRepo string
		wantPR  bool
	}{
		{
			name:     "issue permalink",
			url:      "https://github.com/acme/widgets/issues/42",
			wantOrg:  "acme",
			wantRepo: "widgets",
			wantPR:   false,
		},
		{
			name:     "pull request permalink",
			url:      "https://github.com/acme/widgets/pull/7",
			wantOrg:  "acme",
			wantRepo: "widgets",
			wantPR:   true,
		},
		{
			name:     "api style URL",
			url:      "https://api.github.com/repos/acme/widgets/issues/42",
			wantOrg:  "acme",
			wantRepo: "widgets",
			wantPR:   false,
		},
		{
			name:     "malformed URL with too few segments",
			url:      "not-a-url",
			wantOrg:  "",
			wantRepo: "",
			wantPR:   false,
		},
		{
			name:     "empty URL",
			url:      "",
			wantOrg:  "",
			wantRepo: "",
			wantPR:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, repo, isPR := DeriveRepoOrg(tt.url)
			if org != tt.wantOrg {
				t.Errorf("org = %q, want %q", org, tt.wantOrg)
			}
			if repo != tt.wantRepo {
				t.Errorf("repo = %q, want %q", repo, tt.wantRepo)
			}
			if isPR != tt.wantPR {
				t.Errorf("isPR = %v, want %v", isPR, tt.wantPR)
			}
		})
	}
}

func TestDeriveSetsBothOrNeither(t *testing.T) {
	rec := &IssueRecord{URL: "nope"}
	rec.Derive()
	if rec.Organization != "" || rec.Repository != "" {
		t.Errorf("expected both fields empty, got org=%q repo=%q", rec.Organization, rec.Repository)
	}
	if rec.HasRepo() {
		t.Error("HasRepo() should be false for a malformed URL")
	}

	rec = &IssueRecord{URL: "https://github.com/acme/widgets/issues/1"}
	rec.Derive()
	if !rec.HasRepo() {
		t.Error("HasRepo() should be true for a well-formed URL")
	}
}

func TestUpdatedTimeFallback(t *testing.T) {
	rec := &IssueRecord{UpdatedAt: "garbage"}
	if !rec.UpdatedTime().IsZero() {
		t.Error("expected zero time for malformed updated_at")
	}

	rec = &IssueRecord{UpdatedAt: "2024-03-01T12:00:00Z"}
	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if !rec.UpdatedTime().Equal(want) {
		t.Errorf("UpdatedTime() = %v, want %v", rec.UpdatedTime(), want)
	}
}

func TestSearchResponseDecoding(t *testing.T) {
	payload := `{
		"total_count": 2,
		"items": [
			{
				"html_url": "https://github.com/acme/widgets/issues/42",
				"title": "Broken widget",
				"number": 42,
				"state": "open",
				"created_at": "2024-01-01T00:00:00Z",
				"updated_at": "2024-02-01T00:00:00Z",
				"labels": [{"name": "bug"}],
				"body": "It broke.",
				"comments_url": "https://api.github.com/repos/acme/widgets/issues/42/comments"
			},
			{
				"html_url": "https://github.com/acme/gadgets/pull/7",
				"title": "Fix gadget",
				"number": 7,
				"state": "open",
				"created_at": "2024-01-02T00:00:00Z",
				"updated_at": "2024-02-02T00:00:00Z",
				"labels": [],
				"comments_url": "https://api.github.com/repos/acme/gadgets/issues/7/comments"
			}
		]
	}`

	var resp SearchResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", resp.TotalCount)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}

	for _, item := range resp.Items {
		item.Derive()
	}

	if resp.Items[0].Organization != "acme" || resp.Items[0].Repository != "widgets" {
		t.Errorf("item 0 derived org/repo = %q/%q", resp.Items[0].Organization, resp.Items[0].Repository)
	}
	if resp.Items[0].IsPullRequest {
		t.Error("item 0 should not be a pull request")
	}
	if !resp.Items[1].IsPullRequest {
		t.Error("item 1 should be a pull request")
	}
	if got := resp.Items[0].LabelNames(); len(got) != 1 || got[0] != "bug" {
		t.Errorf("LabelNames() = %v, want [bug]", got)
	}
}
