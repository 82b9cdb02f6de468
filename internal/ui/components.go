package ui

import (
	"github.com/andy/gitdash/internal/theme"
	"github.com/rivo/tview"
)

// Components holds all the TUI widgets
type Components struct {
	App         *tview.Application
	TabBar      *tview.TextView
	IssueList   *tview.List
	DetailPanel *tview.TextView
	HomePanel   *tview.TextView
	StatusBar   *tview.TextView
	Content     *tview.Pages // home panel vs. list+detail split
	Pages       *tview.Pages // main layout vs. modal overlays
}

// Page names inside Components.Content.
const (
	ContentHome = "home"
	ContentList = "list"
)

// Overlay page names on Components.Pages. The dialog helpers add these;
// Render removes them whenever the state machine reports no open modal,
// so an overlay can never outlive the modal it belongs to.
const (
	PageActionPrompt = "action_prompt"
	PagePicker       = "picker"
)

// CreateComponents initializes all TUI widgets with default settings
func CreateComponents() *Components {
	app := tview.NewApplication()
	th := theme.Current()

	tabBar := tview.NewTextView().
		SetDynamicColors(true)

	issueList := tview.NewList().
		ShowSecondaryText(false).
		SetSelectedBackgroundColor(th.SelectionBg()).
		SetSelectedTextColor(th.SelectionFg())
	issueList.SetBorder(true).SetTitle("Assignments")

	detailPanel := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	detailPanel.SetBorder(true).SetTitle("Details")

	homePanel := tview.NewTextView().
		SetDynamicColors(true)
	homePanel.SetBorder(true).SetTitle("Home")

	statusBar := tview.NewTextView().
		SetDynamicColors(true)

	// 30/70 split between list and detail
	listLayout := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(issueList, 0, 3, true).
		AddItem(detailPanel, 0, 7, false)

	content := tview.NewPages().
		AddPage(ContentHome, homePanel, true, true).
		AddPage(ContentList, listLayout, true, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tabBar, 1, 0, false).
		AddItem(content, 0, 1, true).
		AddItem(statusBar, 1, 0, false)

	// Pages for modal dialogs
	pages := tview.NewPages().
		AddPage("main", mainLayout, true, true)

	return &Components{
		App:         app,
		TabBar:      tabBar,
		IssueList:   issueList,
		DetailPanel: detailPanel,
		HomePanel:   homePanel,
		StatusBar:   statusBar,
		Content:     content,
		Pages:       pages,
	}
}

// ApplyTheme updates widget chrome after a theme switch.
func (c *Components) ApplyTheme() {
	th := theme.Current()
	c.IssueList.
		SetSelectedBackgroundColor(th.SelectionBg()).
		SetSelectedTextColor(th.SelectionFg())
	c.IssueList.SetBorderColor(th.BorderFocused())
	c.DetailPanel.SetBorderColor(th.BorderNormal())
	c.HomePanel.SetBorderColor(th.BorderNormal())
}
