package theme

import "github.com/gdamore/tcell/v2"

// DefaultTheme is the built-in color scheme used when no theme is configured
type DefaultTheme struct{}

func init() {
	Register(&DefaultTheme{})
}

func (t *DefaultTheme) Name() string {
	return "default"
}

func (t *DefaultTheme) AgeFresh() string {
	return "white"
}

func (t *DefaultTheme) AgeStale() string {
	return "yellow" // untouched for two months
}

func (t *DefaultTheme) AgeOld() string {
	return "red" // untouched for three months
}

func (t *DefaultTheme) StateOpen() string {
	return "limegreen"
}

func (t *DefaultTheme) StateClosed() string {
	return "darkgray"
}

func (t *DefaultTheme) PullRequest() string {
	return "mediumpurple"
}

func (t *DefaultTheme) Success() string {
	return "limegreen"
}

func (t *DefaultTheme) Error() string {
	return "red"
}

func (t *DefaultTheme) Warning() string {
	return "gold"
}

func (t *DefaultTheme) Info() string {
	return "lightcyan"
}

func (t *DefaultTheme) Muted() string {
	return "gray"
}

func (t *DefaultTheme) Emphasis() string {
	return "yellow"
}

func (t *DefaultTheme) Accent() string {
	return "lightcyan"
}

func (t *DefaultTheme) SelectionBg() tcell.Color {
	return tcell.ColorDarkCyan
}

func (t *DefaultTheme) SelectionFg() tcell.Color {
	return tcell.ColorBlack
}

func (t *DefaultTheme) BorderNormal() tcell.Color {
	return tcell.ColorWhite
}

func (t *DefaultTheme) BorderFocused() tcell.Color {
	return tcell.ColorLightCyan
}
