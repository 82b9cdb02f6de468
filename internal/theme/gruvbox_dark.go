package theme

import "github.com/gdamore/tcell/v2"

// GruvboxDarkTheme provides the Gruvbox Dark color scheme
// Based on: https://github.com/morhetz/gruvbox
type GruvboxDarkTheme struct{}

func init() {
	Register(&GruvboxDarkTheme{})
}

func (t *GruvboxDarkTheme) Name() string {
	return "gruvbox-dark"
}

func (t *GruvboxDarkTheme) AgeFresh() string {
	return "#ebdbb2" // fg
}

func (t *GruvboxDarkTheme) AgeStale() string {
	return "#fabd2f" // bright yellow
}

func (t *GruvboxDarkTheme) AgeOld() string {
	return "#fb4934" // bright red
}

func (t *GruvboxDarkTheme) StateOpen() string {
	return "#b8bb26" // bright green
}

func (t *GruvboxDarkTheme) StateClosed() string {
	return "#928374" // gray
}

func (t *GruvboxDarkTheme) PullRequest() string {
	return "#d3869b" // bright purple
}

func (t *GruvboxDarkTheme) Success() string {
	return "#b8bb26"
}

func (t *GruvboxDarkTheme) Error() string {
	return "#fb4934"
}

func (t *GruvboxDarkTheme) Warning() string {
	return "#fabd2f"
}

func (t *GruvboxDarkTheme) Info() string {
	return "#83a598" // bright blue
}

func (t *GruvboxDarkTheme) Muted() string {
	return "#928374"
}

func (t *GruvboxDarkTheme) Emphasis() string {
	return "#fe8019" // bright orange
}

func (t *GruvboxDarkTheme) Accent() string {
	return "#8ec07c" // bright aqua
}

func (t *GruvboxDarkTheme) SelectionBg() tcell.Color {
	return tcell.NewHexColor(0x504945)
}

func (t *GruvboxDarkTheme) SelectionFg() tcell.Color {
	return tcell.NewHexColor(0xfbf1c7)
}

func (t *GruvboxDarkTheme) BorderNormal() tcell.Color {
	return tcell.NewHexColor(0x665c54)
}

func (t *GruvboxDarkTheme) BorderFocused() tcell.Color {
	return tcell.NewHexColor(0x8ec07c)
}
