package state

import (
	"github.com/andy/gitdash/internal/filter"
	"github.com/andy/gitdash/internal/model"
)

// Tab identifies one of the dashboard's top-level views
type Tab int

const (
	TabHome Tab = iota
	TabAssignments
	TabClosed
	TabToReview
)

// Modal identifies the overlay capturing input, if any. Only one modal is
// active at a time and all of them are reachable only from the
// Assignments tab.
type Modal int

const (
	ModalNone Modal = iota
	ModalActionPrompt
	ModalChooseOrganization
	ModalChooseRepository
)

// String returns the tab's display name
func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabAssignments:
		return "Assignments"
	case TabClosed:
		return "Closed"
	case TabToReview:
		return "To Review"
	default:
		return "Unknown"
	}
}

// ViewState holds the whole interactive session: the three issue
// collections, per-tab cursors, the active tab and modal, and the loading
// flag. It is owned by the main event loop; nothing else mutates it.
type ViewState struct {
	open     []*model.IssueRecord
	closed   []*model.IssueRecord
	toReview []*model.IssueRecord

	// Total counts as reported by the search API; these can exceed the
	// fetched page size, so they are tracked separately from len().
	openCount     int
	closedCount   int
	toReviewCount int

	activeTab Tab
	cursors   map[Tab]int

	modal       Modal
	modalItems  []string
	modalCursor int

	showComments bool
	loading      bool
	statusMsg    string
}

// New creates a fresh session state: Home tab, no modal, cursors at zero,
// loading until the first fetch lands.
func New() *ViewState {
	return &ViewState{
		activeTab: TabHome,
		cursors: map[Tab]int{
			TabAssignments: 0,
			TabClosed:      0,
			TabToReview:    0,
		},
		loading: true,
	}
}

// ReplaceCollections installs a freshly fetched set of collections. All
// cursors reset to zero, any open modal closes, and the loading flag
// clears. Called once per completed refresh.
func (v *ViewState) ReplaceCollections(open, closed, toReview []*model.IssueRecord, openCount, closedCount, toReviewCount int) {
	v.open = open
	v.closed = closed
	v.toReview = toReview
	v.openCount = openCount
	v.closedCount = closedCount
	v.toReviewCount = toReviewCount
	for tab := range v.cursors {
		v.cursors[tab] = 0
	}
	v.closeModal()
	v.loading = false
}

// SetLoading flips the loading indicator shown in place of list content.
func (v *ViewState) SetLoading(loading bool) {
	v.loading = loading
}

// Loading reports whether a fetch is outstanding.
func (v *ViewState) Loading() bool {
	return v.loading
}

// SetStatus records a one-line message for the status bar.
func (v *ViewState) SetStatus(msg string) {
	v.statusMsg = msg
}

// Status returns the current status bar message.
func (v *ViewState) Status() string {
	return v.statusMsg
}

// SwitchTab activates a tab. The comments panel resets; per-tab cursors
// persist so returning to a tab restores its selection.
func (v *ViewState) SwitchTab(tab Tab) {
	v.activeTab = tab
	v.showComments = false
	v.closeModal()
}

// ActiveTab returns the active tab.
func (v *ViewState) ActiveTab() Tab {
	return v.activeTab
}

// ActiveCollection returns the collection displayed by the active tab.
// Home has no collection.
func (v *ViewState) ActiveCollection() []*model.IssueRecord {
	switch v.activeTab {
	case TabHome:
		return nil
	case TabAssignments:
		return v.open
	case TabClosed:
		return v.closed
	case TabToReview:
		return v.toReview
	default:
		return nil
	}
}

// Open returns the open-issues collection.
func (v *ViewState) Open() []*model.IssueRecord { return v.open }

// Closed returns the closed-issues collection.
func (v *ViewState) Closed() []*model.IssueRecord { return v.closed }

// ToReview returns the review-requested collection.
func (v *ViewState) ToReview() []*model.IssueRecord { return v.toReview }

// Counts returns the API-reported totals for open, closed and to-review.
func (v *ViewState) Counts() (open, closed, toReview int) {
	return v.openCount, v.closedCount, v.toReviewCount
}

// Cursor returns the selection index for the active tab.
func (v *ViewState) Cursor() int {
	return v.cursors[v.activeTab]
}

// MoveSelection moves the active tab's cursor by delta, clamped to the
// collection bounds. A no-op on Home, on an empty collection, or while a
// modal is capturing input (modal navigation goes through MoveModal).
func (v *ViewState) MoveSelection(delta int) {
	if v.modal != ModalNone {
		v.MoveModal(delta)
		return
	}
	items := v.ActiveCollection()
	if len(items) == 0 {
		return
	}
	cur := v.cursors[v.activeTab]
	if cur > len(items)-1 {
		// Collection shrank since the cursor was set; clamp first.
		cur = len(items) - 1
	}
	v.cursors[v.activeTab] = filter.MoveCursor(cur, len(items), delta)
}

// Selected returns the record under the active tab's cursor, or false
// when the tab has no selectable content.
func (v *ViewState) Selected() (*model.IssueRecord, bool) {
	items := v.ActiveCollection()
	if len(items) == 0 {
		return nil, false
	}
	cur := v.cursors[v.activeTab]
	if cur > len(items)-1 {
		cur = len(items) - 1
	}
	return items[cur], true
}

// SetShowComments toggles the comments panel. Only meaningful on the
// Assignments tab; ignored elsewhere.
func (v *ViewState) SetShowComments(show bool) {
	if v.activeTab != TabAssignments {
		return
	}
	v.showComments = show
}

// ShowComments reports whether the detail panel shows comments.
func (v *ViewState) ShowComments() bool {
	return v.showComments
}

// ToggleActionPrompt flips the action prompt. Only available on the
// Assignments tab; any picker modal is replaced.
func (v *ViewState) ToggleActionPrompt() {
	if v.activeTab != TabAssignments {
		return
	}
	if v.modal == ModalActionPrompt {
		v.closeModal()
		return
	}
	v.modal = ModalActionPrompt
	v.modalItems = nil
	v.modalCursor = 0
}

// OpenOrganizationPicker computes the distinct organizations of the
// active collection and opens the chooser. No-op off the Assignments tab.
func (v *ViewState) OpenOrganizationPicker() {
	if v.activeTab != TabAssignments {
		return
	}
	v.modal = ModalChooseOrganization
	v.modalItems = filter.DistinctOrganizations(v.ActiveCollection())
	v.modalCursor = 0
}

// OpenRepositoryPicker computes the distinct repositories of the active
// collection and opens the chooser. No-op off the Assignments tab.
func (v *ViewState) OpenRepositoryPicker() {
	if v.activeTab != TabAssignments {
		return
	}
	v.modal = ModalChooseRepository
	v.modalItems = filter.DistinctRepositories(v.ActiveCollection())
	v.modalCursor = 0
}

// Modal returns the active modal.
func (v *ViewState) Modal() Modal {
	return v.modal
}

// ModalItems returns the item list of the open picker modal.
func (v *ViewState) ModalItems() []string {
	return v.modalItems
}

// ModalCursor returns the picker modal's selection index.
func (v *ViewState) ModalCursor() int {
	return v.modalCursor
}

// MoveModal moves the picker cursor by delta, clamped. No-op when the
// modal has no items.
func (v *ViewState) MoveModal(delta int) {
	if len(v.modalItems) == 0 {
		return
	}
	v.modalCursor = filter.MoveCursor(v.modalCursor, len(v.modalItems), delta)
}

// ConfirmModal applies the picker selection: the open collection is
// replaced by the matching subset, the Assignments cursor resets, and the
// modal closes. Confirming an empty picker (or the action prompt, which
// has no selectable filter) just closes the modal.
func (v *ViewState) ConfirmModal() {
	defer v.closeModal()

	if len(v.modalItems) == 0 {
		return
	}
	choice := v.modalItems[v.modalCursor]

	switch v.modal {
	case ModalChooseOrganization:
		v.open = filter.ByOrganization(v.open, choice)
	case ModalChooseRepository:
		v.open = filter.ByRepository(v.open, choice)
	case ModalActionPrompt, ModalNone:
		return
	}
	v.openCount = len(v.open)
	v.cursors[TabAssignments] = 0
}

// CloseModal dismisses whichever modal is open.
func (v *ViewState) CloseModal() {
	v.closeModal()
}

func (v *ViewState) closeModal() {
	v.modal = ModalNone
	v.modalItems = nil
	v.modalCursor = 0
}

// RemoveOpen drops the issue identified by (org, repo, number) from the
// open collection after a confirmed close, decrements the open count and
// resets the Assignments cursor. Removing an issue that is not present is
// a no-op. The closed collection is not touched; the next refresh picks
// the issue up there.
func (v *ViewState) RemoveOpen(org, repo string, number int) bool {
	for idx, item := range v.open {
		if item.Number == number && item.Organization == org && item.Repository == repo {
			v.open = append(v.open[:idx], v.open[idx+1:]...)
			v.openCount--
			v.cursors[TabAssignments] = 0
			return true
		}
	}
	return false
}

// RemoveClosed is the counterpart used after a confirmed reopen.
func (v *ViewState) RemoveClosed(org, repo string, number int) bool {
	for idx, item := range v.closed {
		if item.Number == number && item.Organization == org && item.Repository == repo {
			v.closed = append(v.closed[:idx], v.closed[idx+1:]...)
			v.closedCount--
			v.cursors[TabClosed] = 0
			return true
		}
	}
	return false
}
