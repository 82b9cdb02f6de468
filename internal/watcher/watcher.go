// Package watcher reloads the user's settings file while the dashboard is
// running, so a theme or bot-list edit takes effect without a restart.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the config file for changes and triggers a callback
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	debounceDelay time.Duration
	onChange      func()
	stopCh        chan struct{}
}

// New creates a new config-file watcher
func New(path string, debounceDelay time.Duration, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:       fsWatcher,
		path:          path,
		debounceDelay: debounceDelay,
		onChange:      onChange,
		stopCh:        make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself: editors that replace the file on save (rename + create)
// would otherwise drop the watch.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	go w.watchLoop()
	return nil
}

// Stop stops watching the file
func (w *Watcher) Stop() error {
	close(w.stopCh)
	return w.watcher.Close()
}

// watchLoop runs the main watch loop with debouncing
func (w *Watcher) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Name != w.path {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				// Debounce: reset timer if it's already running
				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				debounceTimer = time.AfterFunc(w.debounceDelay, func() {
					w.onChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable mid-session
			_ = err

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}
