package main

import (
	"github.com/rivo/tview"
)

const helpPage = "help"

func (h *Helpers) helpVisible() bool {
	return h.App.UI.Pages.HasPage(helpPage)
}

const helpText = `[yellow::b]gitdash Keyboard Shortcuts[-::-]

[cyan::b]Tabs[-::-]
  h           Home
  a           Assignments (open issues and PRs assigned to you)
  c           Closed
  t           To Review (PRs awaiting your review)

[cyan::b]Navigation[-::-]
  ↓ / ↑       Move down / up
  →           Show comments for the selected issue
  ←           Back to issue details
  Enter       Open the selected issue in your browser

[cyan::b]Actions[-::-]
  p           Action prompt for the selected issue (Assignments)
  1           Close issue (in the action prompt)
  3           Reopen the selected issue (Closed tab)
  o           Filter by organization (Assignments)
  s           Filter by repository (Assignments)
  r           Refresh from GitHub
  y           Yank (copy) issue URL to clipboard

[cyan::b]General[-::-]
  ?           Show this help screen
  q           Quit

[cyan::b]Command Line Options[-::-]
  --debug     Enable debug logging to ~/.gitdash/debug-<timestamp>.log

[cyan::b]Configuration[-::-]
  Credentials come from the environment:
    export GITHUB_USERNAME=you
    export GITHUB_TOKEN=ghp_...

  Settings live in ~/.gitdash/config.toml and reload on save.
  Themes: default, gruvbox-dark, nord, plus any TOML theme
  dropped into ~/.gitdash/themes/.

[gray]━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━[-]
[yellow]Press any key to close this help[-]`

// ShowHelp displays the keyboard shortcuts overlay. Any key dismisses it.
func (h *Helpers) ShowHelp() {
	helpTextView := tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpTextView.SetBorder(true).
		SetTitle(" Help - Keyboard Shortcuts ").
		SetTitleAlign(tview.AlignCenter)

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(helpTextView, 0, 3, true).
			AddItem(nil, 0, 1, false), 0, 2, true).
		AddItem(nil, 0, 1, false)

	h.App.UI.Pages.AddPage(helpPage, modal, true, true)
}

// HideHelp removes the help overlay.
func (h *Helpers) HideHelp() {
	h.App.UI.Pages.RemovePage(helpPage)
}
