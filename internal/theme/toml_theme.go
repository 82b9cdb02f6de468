package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// TOMLTheme represents a user theme loaded from a TOML file under
// ~/.gitdash/themes/. It lets users recolor the dashboard without
// rebuilding the binary.
type TOMLTheme struct {
	themeName string
	config    tomlThemeConfig
}

// tomlThemeConfig matches the structure of TOML theme files
type tomlThemeConfig struct {
	Theme struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
	} `toml:"theme"`

	Age struct {
		Fresh string `toml:"fresh"`
		Stale string `toml:"stale"`
		Old   string `toml:"old"`
	} `toml:"age"`

	State struct {
		Open        string `toml:"open"`
		Closed      string `toml:"closed"`
		PullRequest string `toml:"pull_request"`
	} `toml:"state"`

	UI struct {
		Success  string `toml:"success"`
		Error    string `toml:"error"`
		Warning  string `toml:"warning"`
		Info     string `toml:"info"`
		Muted    string `toml:"muted"`
		Emphasis string `toml:"emphasis"`
		Accent   string `toml:"accent"`
	} `toml:"ui"`

	Component struct {
		SelectionBg   string `toml:"selection_bg"`
		SelectionFg   string `toml:"selection_fg"`
		BorderNormal  string `toml:"border_normal"`
		BorderFocused string `toml:"border_focused"`
	} `toml:"component"`
}

// ThemesDir returns the directory scanned for user themes.
func ThemesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gitdash", "themes"), nil
}

// LoadTOMLTheme loads one theme file by name from the user themes
// directory.
func LoadTOMLTheme(name string) (*TOMLTheme, error) {
	dir, err := ThemesDir()
	if err != nil {
		return nil, err
	}
	return LoadTOMLThemeFile(name, filepath.Join(dir, name+".toml"))
}

// LoadTOMLThemeFile loads a theme from an explicit path, validating that
// the declared name matches the requested one.
func LoadTOMLThemeFile(name, path string) (*TOMLTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme %s: %w", name, err)
	}

	var config tomlThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", name, err)
	}

	if config.Theme.Name != name {
		return nil, fmt.Errorf("theme name mismatch: file=%s, config=%s", name, config.Theme.Name)
	}

	return &TOMLTheme{themeName: name, config: config}, nil
}

// LoadUserThemes registers every TOML theme found in the user themes
// directory. A missing directory is not an error.
func LoadUserThemes() error {
	dir, err := ThemesDir()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read themes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		t, err := LoadTOMLTheme(name)
		if err != nil {
			return fmt.Errorf("failed to load theme %s: %w", name, err)
		}
		Register(t)
	}

	return nil
}

// Theme interface implementation. Empty values fall back to the default
// theme's color so a sparse theme file stays usable.

func (t *TOMLTheme) Name() string {
	return t.themeName
}

func (t *TOMLTheme) AgeFresh() string {
	return orDefault(t.config.Age.Fresh, (&DefaultTheme{}).AgeFresh())
}

func (t *TOMLTheme) AgeStale() string {
	return orDefault(t.config.Age.Stale, (&DefaultTheme{}).AgeStale())
}

func (t *TOMLTheme) AgeOld() string {
	return orDefault(t.config.Age.Old, (&DefaultTheme{}).AgeOld())
}

func (t *TOMLTheme) StateOpen() string {
	return orDefault(t.config.State.Open, (&DefaultTheme{}).StateOpen())
}

func (t *TOMLTheme) StateClosed() string {
	return orDefault(t.config.State.Closed, (&DefaultTheme{}).StateClosed())
}

func (t *TOMLTheme) PullRequest() string {
	return orDefault(t.config.State.PullRequest, (&DefaultTheme{}).PullRequest())
}

func (t *TOMLTheme) Success() string {
	return orDefault(t.config.UI.Success, (&DefaultTheme{}).Success())
}

func (t *TOMLTheme) Error() string {
	return orDefault(t.config.UI.Error, (&DefaultTheme{}).Error())
}

func (t *TOMLTheme) Warning() string {
	return orDefault(t.config.UI.Warning, (&DefaultTheme{}).Warning())
}

func (t *TOMLTheme) Info() string {
	return orDefault(t.config.UI.Info, (&DefaultTheme{}).Info())
}

func (t *TOMLTheme) Muted() string {
	return orDefault(t.config.UI.Muted, (&DefaultTheme{}).Muted())
}

func (t *TOMLTheme) Emphasis() string {
	return orDefault(t.config.UI.Emphasis, (&DefaultTheme{}).Emphasis())
}

func (t *TOMLTheme) Accent() string {
	return orDefault(t.config.UI.Accent, (&DefaultTheme{}).Accent())
}

func (t *TOMLTheme) SelectionBg() tcell.Color {
	return hexOrDefault(t.config.Component.SelectionBg, (&DefaultTheme{}).SelectionBg())
}

func (t *TOMLTheme) SelectionFg() tcell.Color {
	return hexOrDefault(t.config.Component.SelectionFg, (&DefaultTheme{}).SelectionFg())
}

func (t *TOMLTheme) BorderNormal() tcell.Color {
	return hexOrDefault(t.config.Component.BorderNormal, (&DefaultTheme{}).BorderNormal())
}

func (t *TOMLTheme) BorderFocused() tcell.Color {
	return hexOrDefault(t.config.Component.BorderFocused, (&DefaultTheme{}).BorderFocused())
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func hexOrDefault(value string, fallback tcell.Color) tcell.Color {
	if value == "" {
		return fallback
	}
	return tcell.GetColor(value)
}
