package main

import (
	"fmt"

	"github.com/andy/gitdash/internal/theme"
)

func main() {
	if err := theme.LoadUserThemes(); err != nil {
		fmt.Printf("warning: could not load user themes: %v\n", err)
	}

	themes := theme.List()
	fmt.Printf("Available themes (%d):\n", len(themes))
	for _, name := range themes {
		fmt.Printf("  - %s\n", name)
	}

	// Test switching to each theme
	fmt.Println("\nTesting theme switching:")
	for _, name := range themes {
		err := theme.SetCurrent(name)
		if err != nil {
			fmt.Printf("  ✗ %s: %v\n", name, err)
		} else {
			current := theme.Current()
			fmt.Printf("  ✓ %s (accent: %s)\n", name, current.Accent())
		}
	}
}
