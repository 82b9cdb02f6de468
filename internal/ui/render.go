package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/andy/gitdash/internal/formatting"
	"github.com/andy/gitdash/internal/model"
	"github.com/andy/gitdash/internal/state"
	"github.com/rivo/tview"
)

// Render repaints every widget from the current view state. It never
// mutates the state and treats empty collections as an empty-state
// message rather than indexing into them.
func (c *Components) Render(vs *state.ViewState, username string, isBot func(string) bool, now time.Time) {
	// A background refresh can close a modal in the state machine while
	// its overlay is still on the page stack; drop stale overlays here so
	// keys never route to a view hidden behind a dead popup.
	if vs.Modal() == state.ModalNone {
		c.Pages.RemovePage(PageActionPrompt)
		c.Pages.RemovePage(PagePicker)
	}

	c.renderTabBar(vs)
	c.renderStatusBar(vs)

	if vs.ActiveTab() == state.TabHome {
		c.renderHome(vs, username)
		c.Content.SwitchToPage(ContentHome)
		return
	}

	c.renderList(vs, now)
	c.renderDetail(vs, isBot)
	c.Content.SwitchToPage(ContentList)
}

func (c *Components) renderTabBar(vs *state.ViewState) {
	tabs := []state.Tab{state.TabHome, state.TabAssignments, state.TabClosed, state.TabToReview}
	keys := []string{"h", "a", "c", "t"}

	var parts []string
	for i, tab := range tabs {
		label := fmt.Sprintf("%s %s", keys[i], tab)
		if tab == vs.ActiveTab() {
			parts = append(parts, fmt.Sprintf("[%s::b]%s[-::-]", formatting.GetAccentColor(), label))
		} else {
			parts = append(parts, fmt.Sprintf("[%s]%s[-]", formatting.GetMutedColor(), label))
		}
	}
	parts = append(parts, fmt.Sprintf("[%s]q Quit[-]", formatting.GetMutedColor()))

	c.TabBar.SetText(" " + strings.Join(parts, " [gray]|[-] "))
}

func (c *Components) renderStatusBar(vs *state.ViewState) {
	msg := vs.Status()
	if msg == "" {
		msg = fmt.Sprintf("[%s]Enter open · p actions · o org · s repo · r refresh · y yank · ? help[-]", formatting.GetMutedColor())
	}
	c.StatusBar.SetText(" " + msg)
}

func (c *Components) renderHome(vs *state.ViewState, username string) {
	open, closed, toReview := vs.Counts()

	var b strings.Builder
	fmt.Fprintf(&b, "\n [%s::b]gitdash[-::-] — GitHub dashboard for [%s]%s[-]\n\n", formatting.GetAccentColor(), formatting.GetEmphasisColor(), username)
	if vs.Loading() {
		fmt.Fprintf(&b, " [%s]Loading your issues and pull requests...[-]\n", formatting.GetInfoColor())
	} else {
		fmt.Fprintf(&b, " [%s]%d[-] open assignments\n", formatting.GetSuccessColor(), open)
		fmt.Fprintf(&b, " [%s]%d[-] closed\n", formatting.GetMutedColor(), closed)
		fmt.Fprintf(&b, " [%s]%d[-] pull requests waiting for your review\n", formatting.GetWarningColor(), toReview)
	}
	fmt.Fprintf(&b, "\n [%s]Press a for assignments, c for closed, t for reviews.[-]\n", formatting.GetMutedColor())

	c.HomePanel.SetText(b.String())
}

func (c *Components) renderList(vs *state.ViewState, now time.Time) {
	c.IssueList.Clear()
	c.IssueList.SetTitle(fmt.Sprintf(" %s (%d) ", vs.ActiveTab(), len(vs.ActiveCollection())))

	if vs.Loading() {
		c.IssueList.AddItem(fmt.Sprintf("[%s]Loading...[-]", formatting.GetInfoColor()), "", 0, nil)
		return
	}

	items := vs.ActiveCollection()
	if len(items) == 0 {
		c.IssueList.AddItem(fmt.Sprintf("[%s]Nothing here.[-]", formatting.GetMutedColor()), "", 0, nil)
		return
	}

	for _, item := range items {
		c.IssueList.AddItem(formatIssueListItem(item, now), "", 0, nil)
	}
	c.IssueList.SetCurrentItem(vs.Cursor())
}

func formatIssueListItem(item *model.IssueRecord, now time.Time) string {
	color := formatting.GetAgeColor(item.UpdatedTime(), now)
	glyph := formatting.TypeIndicator(item.IsPullRequest)
	if item.IsPullRequest {
		glyph = fmt.Sprintf("[%s]%s[%s]", formatting.GetPullRequestColor(), glyph, color)
	}
	return fmt.Sprintf("[%s]%-5d %s %s[-]",
		color,
		item.Number,
		glyph,
		formatting.Truncate(item.Title, 60),
	)
}

func (c *Components) renderDetail(vs *state.ViewState, isBot func(string) bool) {
	if vs.Loading() {
		c.DetailPanel.SetText("")
		return
	}

	selected, ok := vs.Selected()
	if !ok {
		c.DetailPanel.SetText(fmt.Sprintf("[%s]No issue selected.[-]", formatting.GetMutedColor()))
		return
	}

	if vs.ShowComments() {
		c.DetailPanel.SetText(renderComments(selected, isBot))
		return
	}
	c.DetailPanel.SetText(renderIssueDetails(selected))
}

func renderIssueDetails(item *model.IssueRecord) string {
	info := formatting.GetInfoColor()

	orgRepo := "N/A"
	if item.HasRepo() {
		orgRepo = fmt.Sprintf("%s / %s", item.Organization, item.Repository)
	}

	body := item.Body
	if body == "" {
		body = "N/A"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s #%d[-::-]\n\n", formatting.GetEmphasisColor(), item.Title, item.Number)
	fmt.Fprintf(&b, "[%s]Organization / Repository[-]\n%s\n\n", info, orgRepo)
	fmt.Fprintf(&b, "[%s]State[-]\n[%s]%s[-]\n\n", info, formatting.GetStateColor(string(item.State)), item.State)
	fmt.Fprintf(&b, "[%s]Labels[-]\n%s\n\n", info, formatting.JoinLabels(item.LabelNames()))
	fmt.Fprintf(&b, "[%s]Created[-]  %s    [%s]Updated[-]  %s\n\n", info, formatting.FormatDate(item.CreatedAt), info, formatting.FormatDate(item.UpdatedAt))
	fmt.Fprintf(&b, "[%s]Description[-]\n%s\n", info, formatting.TruncateLines(tview.Escape(body), 40))
	return b.String()
}

func renderComments(item *model.IssueRecord, isBot func(string) bool) string {
	info := formatting.GetInfoColor()
	comments := formatting.FilterBotComments(item.Comments, isBot)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s #%d[-::-]\n\n", formatting.GetEmphasisColor(), item.Title, item.Number)
	fmt.Fprintf(&b, "[%s]Created[-]  %s    [%s]Updated[-]  %s\n\n", info, formatting.FormatDate(item.CreatedAt), info, formatting.FormatDate(item.UpdatedAt))
	fmt.Fprintf(&b, "[%s]Comments[-]\n", info)

	if len(comments) == 0 {
		fmt.Fprintf(&b, "[%s]No comments[-]\n", formatting.GetMutedColor())
		return b.String()
	}

	for _, comment := range comments {
		fmt.Fprintf(&b, "\n[%s]%s[-]: %s\n", formatting.GetAccentColor(), comment.User.Login, tview.Escape(comment.Body))
	}
	return b.String()
}
