package main

import (
	"fmt"

	"github.com/andy/gitdash/internal/formatting"
	"github.com/andy/gitdash/internal/state"
	"github.com/andy/gitdash/internal/theme"
	"github.com/andy/gitdash/internal/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// openPicker computes the distinct organization/repository list over the
// active collection and shows the chooser. The state machine owns the
// item list and cursor; the tview list is a projection of it.
func (h *Helpers) openPicker(kind state.Modal) {
	switch kind {
	case state.ModalChooseOrganization:
		h.App.State.OpenOrganizationPicker()
	case state.ModalChooseRepository:
		h.App.State.OpenRepositoryPicker()
	default:
		return
	}
	if h.App.State.Modal() == state.ModalNone {
		// Off the Assignments tab the pickers don't open.
		return
	}
	h.syncPicker()
}

// syncPicker rebuilds the picker overlay from the modal state.
func (h *Helpers) syncPicker() {
	vs := h.App.State
	th := theme.Current()

	title := " Choose organization "
	if vs.Modal() == state.ModalChooseRepository {
		title = " Choose repository "
	}

	list := tview.NewList().
		ShowSecondaryText(false).
		SetSelectedBackgroundColor(th.SelectionBg()).
		SetSelectedTextColor(th.SelectionFg())
	list.SetBorder(true).
		SetTitle(title).
		SetTitleAlign(tview.AlignCenter)

	items := vs.ModalItems()
	if len(items) == 0 {
		list.AddItem(fmt.Sprintf("[%s]Nothing to choose from[-]", formatting.GetMutedColor()), "", 0, nil)
	} else {
		for _, item := range items {
			list.AddItem(item, "", 0, nil)
		}
		list.SetCurrentItem(vs.ModalCursor())
	}

	height := len(items) + 4
	if height < 7 {
		height = 7
	}
	if height > 20 {
		height = 20
	}

	h.App.UI.Pages.RemovePage(ui.PagePicker)
	h.App.UI.Pages.AddPage(ui.PagePicker, centered(list, 44, height), true, true)
}

func (h *Helpers) handlePickerKey(event *tcell.EventKey) *tcell.EventKey {
	vs := h.App.State

	switch {
	case event.Key() == tcell.KeyUp:
		vs.MoveModal(-1)
		h.syncPicker()
	case event.Key() == tcell.KeyDown:
		vs.MoveModal(1)
		h.syncPicker()
	case event.Key() == tcell.KeyEnter:
		vs.ConfirmModal()
		h.hideModalPages()
		h.App.Redraw()
	case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
		vs.CloseModal()
		h.hideModalPages()
		h.App.Redraw()
	}
	return nil
}
