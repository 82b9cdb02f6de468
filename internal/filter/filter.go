// Package filter provides the pure list operations behind the dashboard:
// sorting, org/repo subsetting and cursor movement. Functions never mutate
// their inputs and never perform I/O.
package filter

import (
	"sort"

	"github.com/andy/gitdash/internal/model"
)

// SortByRecency returns the items ordered by updated_at, newest first.
// The sort is stable: items with equal timestamps keep their relative
// order. The input slice is not modified.
func SortByRecency(items []*model.IssueRecord) []*model.IssueRecord {
	out := append([]*model.IssueRecord(nil), items...)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].UpdatedTime().After(out[b].UpdatedTime())
	})
	return out
}

// SortByRepository returns the items ordered by repository name,
// ascending. Items with no resolvable repository sort first (empty
// string). Stable, input untouched.
func SortByRepository(items []*model.IssueRecord) []*model.IssueRecord {
	out := append([]*model.IssueRecord(nil), items...)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Repository < out[b].Repository
	})
	return out
}

// ByPullRequest keeps only items whose pull-request flag matches wantPR,
// preserving order.
func ByPullRequest(items []*model.IssueRecord, wantPR bool) []*model.IssueRecord {
	var out []*model.IssueRecord
	for _, item := range items {
		if item.IsPullRequest == wantPR {
			out = append(out, item)
		}
	}
	return out
}

// ByOrganization keeps only items whose derived organization exactly
// matches org, preserving order. Items with no resolvable organization
// never match.
func ByOrganization(items []*model.IssueRecord, org string) []*model.IssueRecord {
	var out []*model.IssueRecord
	for _, item := range items {
		if item.Organization != "" && item.Organization == org {
			out = append(out, item)
		}
	}
	return out
}

// ByRepository keeps only items whose derived repository exactly matches
// repo, preserving order.
func ByRepository(items []*model.IssueRecord, repo string) []*model.IssueRecord {
	var out []*model.IssueRecord
	for _, item := range items {
		if item.Repository != "" && item.Repository == repo {
			out = append(out, item)
		}
	}
	return out
}

// DistinctOrganizations returns the organizations present in the items in
// first-seen order, without duplicates. Items with no resolvable
// organization are skipped.
func DistinctOrganizations(items []*model.IssueRecord) []string {
	return distinct(items, func(i *model.IssueRecord) string { return i.Organization })
}

// DistinctRepositories returns the repositories present in the items in
// first-seen order, without duplicates.
func DistinctRepositories(items []*model.IssueRecord) []string {
	return distinct(items, func(i *model.IssueRecord) string { return i.Repository })
}

func distinct(items []*model.IssueRecord, key func(*model.IssueRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		k := key(item)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// MoveCursor returns the cursor moved by delta, clamped to
// [0, length-1]. Movement saturates at the boundaries rather than
// wrapping. Callers must not invoke it with length <= 0; the selection
// over an empty list is meaningless.
func MoveCursor(cursor, length, delta int) int {
	next := cursor + delta
	if next < 0 {
		return 0
	}
	if next > length-1 {
		return length - 1
	}
	return next
}
