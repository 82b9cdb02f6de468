package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andy/gitdash/internal/model"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization header = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github.v3+json" {
			t.Errorf("Accept header = %q", got)
		}

		payload := model.SearchResponse{
			TotalCount: 2,
			Items: []*model.IssueRecord{
				{
					URL:         "https://github.com/acme/widgets/issues/1",
					Title:       "Older",
					Number:      1,
					State:       model.StateOpen,
					UpdatedAt:   "2024-01-01T00:00:00Z",
					CommentsURL: server.URL + "/repos/acme/widgets/issues/1/comments",
				},
				{
					URL:       "https://github.com/acme/widgets/pull/2",
					Title:     "Newer",
					Number:    2,
					State:     model.StateOpen,
					UpdatedAt: "2024-06-01T00:00:00Z",
				},
			},
		}
		json.NewEncoder(w).Encode(payload)
	})

	mux.HandleFunc("/repos/acme/widgets/issues/1/comments", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Comment{
			{Body: "looks good", User: model.User{Login: "reviewer"}},
		})
	})

	mux.HandleFunc("/repos/acme/widgets/issues/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if body["state"] != "closed" {
			http.Error(w, "bad state", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `{}`)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, NewWithBaseURL("octocat", "secret", server.URL)
}

func TestFetchIssues(t *testing.T) {
	_, client := newTestServer(t)

	items, total, err := client.FetchIssues(context.Background(), model.StateOpen)
	if err != nil {
		t.Fatalf("FetchIssues: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	// Sorted newest first.
	if items[0].Number != 2 || items[1].Number != 1 {
		t.Errorf("order = [%d %d], want [2 1]", items[0].Number, items[1].Number)
	}

	// Derived fields and lazily fetched comments.
	if items[1].Organization != "acme" || items[1].Repository != "widgets" {
		t.Errorf("derived org/repo = %q/%q", items[1].Organization, items[1].Repository)
	}
	if !items[0].IsPullRequest {
		t.Error("item 2 should be flagged as a pull request")
	}
	if len(items[1].Comments) != 1 || items[1].Comments[0].User.Login != "reviewer" {
		t.Errorf("comments = %v", items[1].Comments)
	}
}

func TestFetchIssuesCommentFailureDegrades(t *testing.T) {
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.SearchResponse{
			TotalCount: 1,
			Items: []*model.IssueRecord{{
				URL:         "https://github.com/acme/widgets/issues/1",
				Number:      1,
				State:       model.StateOpen,
				UpdatedAt:   "2024-01-01T00:00:00Z",
				CommentsURL: server.URL + "/gone",
			}},
		})
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	client := NewWithBaseURL("octocat", "secret", server.URL)
	items, _, err := client.FetchIssues(context.Background(), model.StateOpen)
	if err != nil {
		t.Fatalf("comment failure must not fail the fetch: %v", err)
	}
	if len(items[0].Comments) != 0 {
		t.Errorf("comments = %v, want empty on fetch failure", items[0].Comments)
	}
}

func TestSetIssueState(t *testing.T) {
	_, client := newTestServer(t)

	if err := client.SetIssueState(context.Background(), "acme", "widgets", 1, model.StateClosed); err != nil {
		t.Fatalf("SetIssueState: %v", err)
	}
}

func TestSetIssueStateRequiresOrgAndRepo(t *testing.T) {
	_, client := newTestServer(t)

	if err := client.SetIssueState(context.Background(), "", "", 1, model.StateClosed); err == nil {
		t.Fatal("expected an error for an unresolved org/repo")
	}
}

func TestSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewWithBaseURL("octocat", "secret", server.URL)
	if _, _, err := client.FetchIssues(context.Background(), model.StateOpen); err == nil {
		t.Fatal("expected an error for a non-200 search response")
	}
}
