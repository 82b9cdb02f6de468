package main

import (
	"github.com/andy/gitdash/internal/app"
	"github.com/andy/gitdash/internal/state"
	"github.com/gdamore/tcell/v2"
)

// Helpers routes key events to the view state machine and keeps the modal
// overlays in sync with it.
//
// Modal handling is split across files like the dialogs it shows:
// - dialog_actions.go: the numbered action prompt
// - dialog_pickers.go: organization/repository choosers
// - dialog_help.go: the key binding overlay
type Helpers struct {
	App *app.AppContext
}

// HandleKey is the application-wide input capture. Keys are interpreted
// against the current modal first; with no modal open they drive tabs,
// cursors and actions. Returning nil consumes the event.
func (h *Helpers) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	if h.helpVisible() {
		h.HideHelp()
		return nil
	}

	switch h.App.State.Modal() {
	case state.ModalActionPrompt:
		return h.handleActionPromptKey(event)
	case state.ModalChooseOrganization, state.ModalChooseRepository:
		return h.handlePickerKey(event)
	case state.ModalNone:
		return h.handleMainKey(event)
	}
	return event
}

func (h *Helpers) handleMainKey(event *tcell.EventKey) *tcell.EventKey {
	vs := h.App.State

	switch event.Key() {
	case tcell.KeyUp:
		vs.MoveSelection(-1)
		h.App.Redraw()
		return nil
	case tcell.KeyDown:
		vs.MoveSelection(1)
		h.App.Redraw()
		return nil
	case tcell.KeyEnter:
		h.App.OpenSelectedInBrowser()
		return nil
	case tcell.KeyRight:
		vs.SetShowComments(true)
		h.App.Redraw()
		return nil
	case tcell.KeyLeft:
		vs.SetShowComments(false)
		h.App.Redraw()
		return nil
	}

	switch event.Rune() {
	case 'q':
		h.App.UI.App.Stop()
		return nil
	case 'h':
		vs.SwitchTab(state.TabHome)
	case 'a':
		vs.SwitchTab(state.TabAssignments)
	case 'c':
		vs.SwitchTab(state.TabClosed)
	case 't':
		vs.SwitchTab(state.TabToReview)
	case 'p':
		vs.ToggleActionPrompt()
		if vs.Modal() == state.ModalActionPrompt {
			h.ShowActionPrompt()
		}
	case 'o':
		h.openPicker(state.ModalChooseOrganization)
	case 's':
		h.openPicker(state.ModalChooseRepository)
	case 'r':
		h.App.Refresh()
		return nil
	case 'y':
		h.App.YankSelectedURL()
		return nil
	case '3':
		h.App.ReopenSelectedIssue()
		return nil
	case '?':
		h.ShowHelp()
		return nil
	default:
		return event
	}

	h.App.Redraw()
	return nil
}
