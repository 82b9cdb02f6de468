package main

import (
	"fmt"

	"github.com/andy/gitdash/internal/formatting"
	"github.com/andy/gitdash/internal/state"
	"github.com/andy/gitdash/internal/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ShowActionPrompt displays the numbered action list for the selected
// issue. The prompt itself carries no cursor; actions are picked by key.
func (h *Helpers) ShowActionPrompt() {
	issue, ok := h.App.State.Selected()
	if !ok {
		h.App.State.CloseModal()
		return
	}

	text := tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf(
			"\n  [%s]#%d %s[-]\n\n  1 - Close issue\n  o - Filter by organization\n  s - Filter by repository\n\n  [%s]p or Esc to dismiss[-]",
			formatting.GetEmphasisColor(), issue.Number, tview.Escape(formatting.Truncate(issue.Title, 40)),
			formatting.GetMutedColor(),
		))
	text.SetBorder(true).
		SetTitle(" Select an action ").
		SetTitleAlign(tview.AlignCenter)

	h.App.UI.Pages.AddPage(ui.PageActionPrompt, centered(text, 50, 10), true, true)
}

func (h *Helpers) handleActionPromptKey(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyEscape, event.Rune() == 'p', event.Rune() == 'q':
		h.App.State.CloseModal()
		h.hideModalPages()
		h.App.Redraw()
		return nil
	case event.Rune() == '1':
		h.App.CloseSelectedIssue()
		h.hideModalPages()
		return nil
	case event.Rune() == 'o':
		h.hideModalPages()
		h.openPicker(state.ModalChooseOrganization)
		return nil
	case event.Rune() == 's':
		h.hideModalPages()
		h.openPicker(state.ModalChooseRepository)
		return nil
	}
	return nil
}

// hideModalPages removes every modal overlay from the page stack.
func (h *Helpers) hideModalPages() {
	h.App.UI.Pages.RemovePage(ui.PageActionPrompt)
	h.App.UI.Pages.RemovePage(ui.PagePicker)
}

// centered wraps a primitive in a fixed-size flex so it floats in the
// middle of the screen.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
