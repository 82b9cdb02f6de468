package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/andy/gitdash/internal/formatting"
	"github.com/andy/gitdash/internal/model"
	"github.com/andy/gitdash/internal/state"
	"github.com/rivo/tview"
)

func TestFormatIssueListItem(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	item := &model.IssueRecord{
		Number:        42,
		Title:         "Broken widget",
		UpdatedAt:     "2024-05-30T00:00:00Z",
		IsPullRequest: false,
	}

	got := formatIssueListItem(item, now)
	if !strings.Contains(got, "42") || !strings.Contains(got, "Broken widget") {
		t.Errorf("list item = %q", got)
	}
	if !strings.Contains(got, "•") {
		t.Errorf("issue glyph missing: %q", got)
	}

	item.IsPullRequest = true
	got = formatIssueListItem(item, now)
	if !strings.Contains(got, "⇄") {
		t.Errorf("pull request glyph missing: %q", got)
	}
	if !strings.Contains(got, formatting.GetPullRequestColor()) {
		t.Errorf("pull request glyph not colored: %q", got)
	}
}

func TestRenderRemovesStaleModalOverlay(t *testing.T) {
	c := CreateComponents()
	c.Pages.AddPage(PageActionPrompt, tview.NewBox(), true, true)
	c.Pages.AddPage(PagePicker, tview.NewBox(), true, true)

	vs := state.New()
	vs.ReplaceCollections(nil, nil, nil, 0, 0, 0)
	c.Render(vs, "octocat", func(string) bool { return false }, time.Now())

	if c.Pages.HasPage(PageActionPrompt) || c.Pages.HasPage(PagePicker) {
		t.Error("overlays for a closed modal must leave the page stack on render")
	}
}

func TestRenderIssueDetails(t *testing.T) {
	item := &model.IssueRecord{
		Number:       42,
		Title:        "Broken widget",
		State:        model.StateOpen,
		Organization: "acme",
		Repository:   "widgets",
		CreatedAt:    "2024-01-01T00:00:00Z",
		UpdatedAt:    "2024-02-01T00:00:00Z",
		Labels:       []model.Label{{Name: "bug"}},
		Body:         "It broke.",
	}

	got := renderIssueDetails(item)
	for _, want := range []string{"acme / widgets", "bug", "2024-01-01", "It broke."} {
		if !strings.Contains(got, want) {
			t.Errorf("details missing %q:\n%s", want, got)
		}
	}

	// Unresolved org/repo degrades to a placeholder, never panics.
	bare := &model.IssueRecord{Number: 1, Title: "x"}
	if got := renderIssueDetails(bare); !strings.Contains(got, "N/A") {
		t.Errorf("expected N/A placeholder:\n%s", got)
	}
}

func TestRenderCommentsFiltersBots(t *testing.T) {
	item := &model.IssueRecord{
		Number: 42,
		Title:  "Broken widget",
		Comments: []model.Comment{
			{Body: "deploy ready", User: model.User{Login: "netlify[bot]"}},
			{Body: "real feedback", User: model.User{Login: "octocat"}},
		},
	}
	isBot := func(login string) bool { return login == "netlify[bot]" }

	got := renderComments(item, isBot)
	if strings.Contains(got, "netlify[bot]") {
		t.Errorf("bot comment leaked into output:\n%s", got)
	}
	if !strings.Contains(got, "octocat") || !strings.Contains(got, "real feedback") {
		t.Errorf("human comment missing:\n%s", got)
	}

	item.Comments = nil
	if got := renderComments(item, isBot); !strings.Contains(got, "No comments") {
		t.Errorf("expected empty-state text:\n%s", got)
	}
}
