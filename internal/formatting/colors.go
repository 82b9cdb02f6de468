package formatting

import (
	"time"

	"github.com/andy/gitdash/internal/theme"
)

// Age thresholds for list row coloring. An issue untouched for more than
// two months gets the warning color, more than three the error color.
const (
	staleAge = 60 * 24 * time.Hour
	oldAge   = 90 * 24 * time.Hour
)

// GetAgeColor returns a tview color code based on how long ago the issue
// was updated. A zero time (unparseable timestamp) renders as old.
func GetAgeColor(updatedAt time.Time, now time.Time) string {
	t := theme.Current()
	age := now.Sub(updatedAt)
	switch {
	case age > oldAge:
		return t.AgeOld()
	case age > staleAge:
		return t.AgeStale()
	default:
		return t.AgeFresh()
	}
}

// GetStateColor returns a tview color code for an issue state string
func GetStateColor(state string) string {
	t := theme.Current()
	switch state {
	case "open":
		return t.StateOpen()
	case "closed":
		return t.StateClosed()
	default:
		return "white"
	}
}

// TypeIndicator returns the list glyph distinguishing pull requests from
// issues
func TypeIndicator(isPullRequest bool) string {
	if isPullRequest {
		return "⇄"
	}
	return "•"
}

// GetPullRequestColor returns the theme's pull request indicator color
func GetPullRequestColor() string {
	return theme.Current().PullRequest()
}

// GetSuccessColor returns the theme's success color
func GetSuccessColor() string {
	return theme.Current().Success()
}

// GetErrorColor returns the theme's error color
func GetErrorColor() string {
	return theme.Current().Error()
}

// GetWarningColor returns the theme's warning color
func GetWarningColor() string {
	return theme.Current().Warning()
}

// GetInfoColor returns the theme's info color
func GetInfoColor() string {
	return theme.Current().Info()
}

// GetMutedColor returns the theme's muted color
func GetMutedColor() string {
	return theme.Current().Muted()
}

// GetEmphasisColor returns the theme's emphasis color
func GetEmphasisColor() string {
	return theme.Current().Emphasis()
}

// GetAccentColor returns the theme's accent color
func GetAccentColor() string {
	return theme.Current().Accent()
}
