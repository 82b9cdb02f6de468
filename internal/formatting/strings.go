package formatting

import (
	"strings"
	"time"
)

// FormatDate renders an RFC3339 timestamp as YYYY-MM-DD. Malformed input
// degrades to a placeholder instead of failing.
func FormatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "invalid date"
	}
	return t.Format("2006-01-02")
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. max below 1 yields the empty string.
func Truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// TruncateLines keeps at most maxLines lines of s, appending a trailing
// ellipsis line when the text was cut.
func TruncateLines(s string, maxLines int) string {
	if maxLines < 1 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n") + "\n..."
}

// JoinLabels renders a label list as a comma-separated line, or a dash
// when there are none.
func JoinLabels(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
