package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/andy/gitdash/internal/config"
	"github.com/andy/gitdash/internal/formatting"
	"github.com/andy/gitdash/internal/model"
	"github.com/andy/gitdash/internal/state"
	"github.com/andy/gitdash/internal/theme"
	"github.com/andy/gitdash/internal/ui"
)

// Gateway is the remote collaborator the dashboard fetches from and posts
// to. internal/github provides the real implementation; tests substitute
// a fake.
type Gateway interface {
	FetchIssues(ctx context.Context, st model.State) ([]*model.IssueRecord, int, error)
	FetchReviewRequests(ctx context.Context) ([]*model.IssueRecord, int, error)
	SetIssueState(ctx context.Context, org, repo string, number int, st model.State) error
}

// AppContext ties the UI widgets, the view state and the gateway
// together. All of its methods run on the UI event loop except Refresh,
// which hands its results back via QueueUpdateDraw.
type AppContext struct {
	UI       *ui.Components
	State    *state.ViewState
	Gateway  Gateway
	Config   *config.Config
	Username string

	// OpenURL and Clipboard are injected by main so the handlers stay
	// testable without a desktop session.
	OpenURL   func(url string) error
	Clipboard func(text string) error

	// now is a hook for deterministic rendering in tests
	now func() time.Time

	// refreshing guards against overlapping fetch goroutines; touched
	// only from the UI loop.
	refreshing bool
}

// New creates an AppContext around already-initialized collaborators
func New(components *ui.Components, gateway Gateway, cfg *config.Config, username string) *AppContext {
	return &AppContext{
		UI:       components,
		State:    state.New(),
		Gateway:  gateway,
		Config:   cfg,
		Username: username,
		now:      time.Now,
	}
}

// Redraw repaints all widgets from the current view state
func (a *AppContext) Redraw() {
	a.UI.Render(a.State, a.Username, a.Config.IsBot, a.now())
}

// Refresh re-fetches all three collections in the background. The loading
// flag is set (and painted) before the fetch starts and cleared when the
// results are applied; navigation keys keep working in between but the
// list tabs show a loading line.
func (a *AppContext) Refresh() {
	if a.refreshing {
		return
	}
	a.refreshing = true
	a.State.SetLoading(true)
	a.State.SetStatus("")
	a.Redraw()

	go func() {
		open, closed, toReview, counts, err := a.fetchAll(context.Background())
		a.UI.App.QueueUpdateDraw(func() {
			a.applyRefresh(open, closed, toReview, counts, err)
		})
	}()
}

// refreshCounts carries the three total counts of one fetch cycle
type refreshCounts struct {
	open, closed, toReview int
}

func (a *AppContext) fetchAll(ctx context.Context) (open, closed, toReview []*model.IssueRecord, counts refreshCounts, err error) {
	open, counts.open, err = a.Gateway.FetchIssues(ctx, model.StateOpen)
	if err != nil {
		return nil, nil, nil, refreshCounts{}, err
	}
	closed, counts.closed, err = a.Gateway.FetchIssues(ctx, model.StateClosed)
	if err != nil {
		return nil, nil, nil, refreshCounts{}, err
	}
	toReview, counts.toReview, err = a.Gateway.FetchReviewRequests(ctx)
	if err != nil {
		return nil, nil, nil, refreshCounts{}, err
	}
	return open, closed, toReview, counts, nil
}

func (a *AppContext) applyRefresh(open, closed, toReview []*model.IssueRecord, counts refreshCounts, err error) {
	a.refreshing = false
	if err != nil {
		log.Printf("refresh failed: %v", err)
		a.State.SetLoading(false)
		a.State.SetStatus(fmt.Sprintf("[%s]Refresh failed: %v[-]", formatting.GetErrorColor(), err))
		a.Redraw()
		return
	}
	a.State.ReplaceCollections(open, closed, toReview, counts.open, counts.closed, counts.toReview)
	a.Redraw()
}

// CloseSelectedIssue closes the issue under the cursor via the gateway.
// Only meaningful while the action prompt is open. The call runs
// synchronously; the collection is only touched after the API confirms
// the transition.
func (a *AppContext) CloseSelectedIssue() {
	if a.State.Modal() != state.ModalActionPrompt {
		return
	}
	issue, ok := a.State.Selected()
	if !ok {
		a.State.CloseModal()
		return
	}
	if !issue.HasRepo() {
		a.State.SetStatus(fmt.Sprintf("[%s]Cannot close #%d: unknown repository[-]", formatting.GetWarningColor(), issue.Number))
		a.State.CloseModal()
		a.Redraw()
		return
	}

	err := a.Gateway.SetIssueState(context.Background(), issue.Organization, issue.Repository, issue.Number, model.StateClosed)
	if err != nil {
		log.Printf("close %s/%s#%d failed: %v", issue.Organization, issue.Repository, issue.Number, err)
		a.State.SetStatus(fmt.Sprintf("[%s]Close failed: %v[-]", formatting.GetErrorColor(), err))
		a.State.CloseModal()
		a.Redraw()
		return
	}

	a.State.RemoveOpen(issue.Organization, issue.Repository, issue.Number)
	a.State.SetStatus(fmt.Sprintf("[%s]✓ Closed %s/%s#%d[-]", formatting.GetSuccessColor(), issue.Organization, issue.Repository, issue.Number))
	a.State.CloseModal()
	a.Redraw()
}

// ReopenSelectedIssue reopens a closed issue through the same idempotent
// state call. Available from the Closed tab; the action prompt does not
// exist there.
func (a *AppContext) ReopenSelectedIssue() {
	if a.State.ActiveTab() != state.TabClosed {
		return
	}
	issue, ok := a.State.Selected()
	if !ok {
		return
	}
	if !issue.HasRepo() {
		a.State.SetStatus(fmt.Sprintf("[%s]Cannot reopen #%d: unknown repository[-]", formatting.GetWarningColor(), issue.Number))
		a.Redraw()
		return
	}

	err := a.Gateway.SetIssueState(context.Background(), issue.Organization, issue.Repository, issue.Number, model.StateOpen)
	if err != nil {
		log.Printf("reopen %s/%s#%d failed: %v", issue.Organization, issue.Repository, issue.Number, err)
		a.State.SetStatus(fmt.Sprintf("[%s]Reopen failed: %v[-]", formatting.GetErrorColor(), err))
		a.Redraw()
		return
	}

	a.State.RemoveClosed(issue.Organization, issue.Repository, issue.Number)
	a.State.SetStatus(fmt.Sprintf("[%s]✓ Reopened %s/%s#%d[-]", formatting.GetSuccessColor(), issue.Organization, issue.Repository, issue.Number))
	a.Redraw()
}

// OpenSelectedInBrowser hands the selected record's permalink to the OS.
// A failure is reported on the status bar, never fatal.
func (a *AppContext) OpenSelectedInBrowser() {
	issue, ok := a.State.Selected()
	if !ok || a.OpenURL == nil {
		return
	}
	if err := a.OpenURL(issue.URL); err != nil {
		log.Printf("failed to open %s: %v", issue.URL, err)
		a.State.SetStatus(fmt.Sprintf("[%s]Failed to open browser: %v[-]", formatting.GetErrorColor(), err))
		a.Redraw()
	}
}

// YankSelectedURL copies the selected record's permalink to the system
// clipboard.
func (a *AppContext) YankSelectedURL() {
	issue, ok := a.State.Selected()
	if !ok || a.Clipboard == nil {
		return
	}
	if err := a.Clipboard(issue.URL); err != nil {
		a.State.SetStatus(fmt.Sprintf("[%s]Clipboard copy failed: %v[-]", formatting.GetErrorColor(), err))
	} else {
		a.State.SetStatus(fmt.Sprintf("[%s]✓ Copied %s[-]", formatting.GetSuccessColor(), issue.URL))
	}
	a.Redraw()
}

// ReloadConfig re-reads the settings file and applies the theme. Invoked
// by the config watcher; runs on the UI loop via QueueUpdateDraw.
func (a *AppContext) ReloadConfig(path string) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Printf("config reload failed: %v", err)
		a.State.SetStatus(fmt.Sprintf("[%s]Config reload failed: %v[-]", formatting.GetErrorColor(), err))
		a.Redraw()
		return
	}
	a.Config = cfg
	if err := theme.SetCurrent(cfg.Theme); err != nil {
		log.Printf("theme %q not found, keeping current", cfg.Theme)
	}
	a.UI.ApplyTheme()
	a.State.SetStatus(fmt.Sprintf("[%s]Config reloaded[-]", formatting.GetSuccessColor()))
	a.Redraw()
}
