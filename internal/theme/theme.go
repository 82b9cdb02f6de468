package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Theme defines the color scheme for the dashboard
type Theme interface {
	// Name returns the theme's display name
	Name() string

	// Age colors for list rows based on updated_at recency
	AgeFresh() string // updated within 60 days
	AgeStale() string // 60 to 90 days old
	AgeOld() string   // more than 90 days old

	// Issue state colors (tview color strings)
	StateOpen() string
	StateClosed() string
	PullRequest() string

	// UI semantic colors (tview color strings)
	Success() string
	Error() string
	Warning() string
	Info() string
	Muted() string
	Emphasis() string
	Accent() string

	// Component colors (tcell.Color for tview style properties)
	SelectionBg() tcell.Color
	SelectionFg() tcell.Color
	BorderNormal() tcell.Color
	BorderFocused() tcell.Color
}

var (
	registry      = make(map[string]Theme)
	currentTheme  Theme
	registryMutex sync.RWMutex
)

// Register adds a theme to the global registry
func Register(t Theme) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[t.Name()] = t

	// Set as current if it's the first theme registered
	if currentTheme == nil {
		currentTheme = t
	}
}

// SetCurrent switches to the named theme
func SetCurrent(name string) error {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	t, exists := registry[name]
	if !exists {
		return fmt.Errorf("theme not found: %s", name)
	}

	currentTheme = t
	return nil
}

// Current returns the currently active theme
func Current() Theme {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	return currentTheme
}

// List returns the names of all registered themes, sorted
func List() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the theme with the given name, or nil if not found
func Get(name string) Theme {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	return registry[name]
}
