package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/andy/gitdash/internal/app"
	"github.com/andy/gitdash/internal/config"
	"github.com/andy/gitdash/internal/github"
	"github.com/andy/gitdash/internal/theme"
	"github.com/andy/gitdash/internal/ui"
	"github.com/andy/gitdash/internal/watcher"
	"github.com/atotto/clipboard"
)

// debugLogPattern names the per-session debug log file; the help overlay
// documents the same pattern.
const debugLogPattern = "debug-%s.log"

func main() {
	// Parse command line flags
	debugMode := flag.Bool("debug", false, "Enable debug logging to file")
	flag.Parse()

	// Set up logging
	var logFile *os.File
	if *debugMode {
		logDir := filepath.Join(os.Getenv("HOME"), ".gitdash")
		if err := os.MkdirAll(logDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create log directory: %v\n", err)
		} else {
			logPath := filepath.Join(logDir, fmt.Sprintf(debugLogPattern, time.Now().Format("2006-01-02-15-04-05")))
			var err error
			logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to open log file: %v\n", err)
			} else {
				log.SetOutput(logFile)
				log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
				defer logFile.Close()
				log.Printf("=== gitdash started in debug mode ===")
				fmt.Fprintf(os.Stderr, "Debug logging enabled: %s\n", logPath)
			}
		}
	} else {
		// Disable logging completely when not in debug mode
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// Credentials are required before anything touches the terminal
	creds, err := config.LoadCredentials()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Settings file is optional; defaults apply when it's absent
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}

	if err := theme.LoadUserThemes(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := theme.SetCurrent(cfg.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using %q\n", err, theme.Current().Name())
	}

	gateway := github.New(creds.Username, creds.Token)

	components := ui.CreateComponents()
	components.ApplyTheme()

	appCtx := app.New(components, gateway, cfg, creds.Username)
	appCtx.OpenURL = openURL
	appCtx.Clipboard = clipboard.WriteAll

	helpers := &Helpers{App: appCtx}
	components.App.SetInputCapture(helpers.HandleKey)

	// Live-reload the settings file so theme or bot-list edits apply
	// without a restart.
	if cfgPath, err := config.ConfigPath(); err == nil {
		w, werr := watcher.New(cfgPath, 200*time.Millisecond, func() {
			components.App.QueueUpdateDraw(func() {
				appCtx.ReloadConfig(cfgPath)
			})
		})
		if werr == nil {
			if serr := w.Start(); serr != nil {
				log.Printf("config watcher not started: %v", serr)
			} else {
				defer func() { _ = w.Stop() }()
			}
		} else {
			log.Printf("config watcher unavailable: %v", werr)
		}
	}

	// Periodic repaint keeps relative ages and the clock honest. A missed
	// tick is harmless.
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			components.App.QueueUpdateDraw(func() {
				appCtx.Redraw()
			})
		}
	}()

	// First paint shows the loading screen, then the initial fetch runs
	// in the background.
	appCtx.Redraw()
	appCtx.Refresh()

	if err := components.App.SetRoot(components.Pages, true).Run(); err != nil {
		// tview restores the terminal before Run returns.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
