package theme

import "github.com/gdamore/tcell/v2"

// NordTheme provides the Nord color scheme
// Based on: https://www.nordtheme.com
type NordTheme struct{}

func init() {
	Register(&NordTheme{})
}

func (t *NordTheme) Name() string {
	return "nord"
}

func (t *NordTheme) AgeFresh() string {
	return "#d8dee9" // nord4
}

func (t *NordTheme) AgeStale() string {
	return "#ebcb8b" // nord13
}

func (t *NordTheme) AgeOld() string {
	return "#bf616a" // nord11
}

func (t *NordTheme) StateOpen() string {
	return "#a3be8c" // nord14
}

func (t *NordTheme) StateClosed() string {
	return "#4c566a" // nord3
}

func (t *NordTheme) PullRequest() string {
	return "#b48ead" // nord15
}

func (t *NordTheme) Success() string {
	return "#a3be8c"
}

func (t *NordTheme) Error() string {
	return "#bf616a"
}

func (t *NordTheme) Warning() string {
	return "#ebcb8b"
}

func (t *NordTheme) Info() string {
	return "#88c0d0" // nord8
}

func (t *NordTheme) Muted() string {
	return "#4c566a"
}

func (t *NordTheme) Emphasis() string {
	return "#81a1c1" // nord9
}

func (t *NordTheme) Accent() string {
	return "#88c0d0"
}

func (t *NordTheme) SelectionBg() tcell.Color {
	return tcell.NewHexColor(0x434c5e)
}

func (t *NordTheme) SelectionFg() tcell.Color {
	return tcell.NewHexColor(0xeceff4)
}

func (t *NordTheme) BorderNormal() tcell.Color {
	return tcell.NewHexColor(0x4c566a)
}

func (t *NordTheme) BorderFocused() tcell.Color {
	return tcell.NewHexColor(0x88c0d0)
}
