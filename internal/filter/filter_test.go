package filter

import (
	"reflect"
	"testing"

	"github.com/andy/gitdash/internal/model"
)

func issue(number int, org, repo, updatedAt string) *model.IssueRecord {
	return &model.IssueRecord{
		Number:       number,
		Organization: org,
		Repository:   repo,
		UpdatedAt:    updatedAt,
	}
}

func numbers(items []*model.IssueRecord) []int {
	var out []int
	for _, i := range items {
		out = append(out, i.Number)
	}
	return out
}

func TestSortByRecency(t *testing.T) {
	items := []*model.IssueRecord{
		issue(1, "acme", "widgets", "2024-01-01T00:00:00Z"),
		issue(2, "acme", "widgets", "2024-01-05T00:00:00Z"),
		issue(3, "acme", "widgets", "2024-01-03T00:00:00Z"),
	}

	sorted := SortByRecency(items)

	if got, want := numbers(sorted), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	// Input order untouched
	if got, want := numbers(items), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("input mutated: %v, want %v", got, want)
	}
}

func TestSortByRecencyStableOnTies(t *testing.T) {
	items := []*model.IssueRecord{
		issue(1, "", "", "2024-01-01T00:00:00Z"),
		issue(2, "", "", "2024-01-01T00:00:00Z"),
		issue(3, "", "", "garbage"), // zero time, sorts last
	}
	sorted := SortByRecency(items)
	if got, want := numbers(sorted), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortByRepository(t *testing.T) {
	items := []*model.IssueRecord{
		issue(1, "acme", "zeta", ""),
		issue(2, "", "", ""),
		issue(3, "acme", "alpha", ""),
	}
	sorted := SortByRepository(items)
	if got, want := numbers(sorted), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestByOrganizationPreservesOrder(t *testing.T) {
	items := []*model.IssueRecord{
		issue(1, "acme", "widgets", ""),
		issue(2, "globex", "stuff", ""),
		issue(3, "acme", "gadgets", ""),
		issue(4, "", "", ""),
	}

	got := ByOrganization(items, "acme")
	if want := []int{1, 3}; !reflect.DeepEqual(numbers(got), want) {
		t.Errorf("numbers = %v, want %v", numbers(got), want)
	}
	for _, item := range got {
		if item.Organization != "acme" {
			t.Errorf("item %d has organization %q", item.Number, item.Organization)
		}
	}

	if got := ByOrganization(items, "unknown"); len(got) != 0 {
		t.Errorf("expected empty result, got %v", numbers(got))
	}
	// Unresolved organization never matches an empty filter value
	if got := ByOrganization(items, ""); len(got) != 0 {
		t.Errorf("empty org must match nothing, got %v", numbers(got))
	}
}

func TestOrgThenRepoFilterComposes(t *testing.T) {
	items := []*model.IssueRecord{
		issue(1, "acme", "widgets", ""),
		issue(2, "acme", "gadgets", ""),
		issue(3, "globex", "widgets", ""),
		issue(4, "acme", "widgets", ""),
	}

	got := ByRepository(ByOrganization(items, "acme"), "widgets")
	if want := []int{1, 4}; !reflect.DeepEqual(numbers(got), want) {
		t.Errorf("numbers = %v, want %v", numbers(got), want)
	}
}

func TestByPullRequest(t *testing.T) {
	a := issue(1, "acme", "widgets", "")
	a.IsPullRequest = true
	b := issue(2, "acme", "widgets", "")

	if got := ByPullRequest([]*model.IssueRecord{a, b}, true); len(got) != 1 || got[0].Number != 1 {
		t.Errorf("want only the pull request, got %v", numbers(got))
	}
	if got := ByPullRequest([]*model.IssueRecord{a, b}, false); len(got) != 1 || got[0].Number != 2 {
		t.Errorf("want only the issue, got %v", numbers(got))
	}
}

func TestDistinctOrganizations(t *testing.T) {
	items := []*model.IssueRecord{
		issue(1, "acme", "widgets", ""),
		issue(2, "globex", "stuff", ""),
		issue(3, "acme", "gadgets", ""),
		issue(4, "", "", ""),
	}

	if got, want := DistinctOrganizations(items), []string{"acme", "globex"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctOrganizations = %v, want %v", got, want)
	}
	if got, want := DistinctRepositories(items), []string{"widgets", "stuff", "gadgets"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctRepositories = %v, want %v", got, want)
	}
	if got := DistinctOrganizations(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		length int
		delta  int
		want   int
	}{
		{"down within range", 0, 3, 1, 1},
		{"up within range", 2, 3, -1, 1},
		{"saturates at bottom", 2, 3, 1, 2},
		{"saturates at top", 0, 3, -1, 0},
		{"large positive delta pins at max", 1, 5, 100, 4},
		{"large negative delta pins at zero", 3, 5, -100, 0},
		{"single element list", 0, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveCursor(tt.cursor, tt.length, tt.delta); got != tt.want {
				t.Errorf("MoveCursor(%d, %d, %d) = %d, want %d", tt.cursor, tt.length, tt.delta, got, tt.want)
			}
		})
	}
}

func TestMoveCursorIdempotentAtBoundary(t *testing.T) {
	cur := 0
	for i := 0; i < 5; i++ {
		cur = MoveCursor(cur, 4, -1)
	}
	if cur != 0 {
		t.Errorf("repeated -1 at index 0 moved cursor to %d", cur)
	}

	cur = 3
	for i := 0; i < 5; i++ {
		cur = MoveCursor(cur, 4, 1)
	}
	if cur != 3 {
		t.Errorf("repeated +1 at max moved cursor to %d", cur)
	}
}
