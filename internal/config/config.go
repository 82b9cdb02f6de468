package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Credentials holds the two required environment values read once at
// startup. Both must be present; without them the dashboard cannot talk
// to GitHub at all.
type Credentials struct {
	Username string
	Token    string
}

// LoadCredentials reads GITHUB_USERNAME and GITHUB_TOKEN from the
// environment. A missing value is a startup error with a message naming
// the variable, not a panic.
func LoadCredentials() (Credentials, error) {
	username := os.Getenv("GITHUB_USERNAME")
	if username == "" {
		return Credentials{}, fmt.Errorf("GITHUB_USERNAME must be set (the GitHub login whose assignments to show)")
	}
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return Credentials{}, fmt.Errorf("GITHUB_TOKEN must be set (a personal access token with repo scope)")
	}
	return Credentials{Username: username, Token: token}, nil
}

// Config holds the user's settings file. Everything has a default; the
// file itself is optional.
type Config struct {
	Theme       string   `toml:"theme"`
	BotLogins   []string `toml:"bot_logins"`
	TickSeconds int      `toml:"tick_seconds"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Theme:       "default",
		BotLogins:   []string{"netlify[bot]", "gatsby-cloud[bot]"},
		TickSeconds: 30,
	}
}

// TickInterval returns the status-bar refresh interval with a sane floor.
func (c *Config) TickInterval() time.Duration {
	if c.TickSeconds < 1 {
		return time.Second
	}
	return time.Duration(c.TickSeconds) * time.Second
}

// IsBot reports whether a comment author login is on the configured bot
// list. Matching is exact.
func (c *Config) IsBot(login string) bool {
	for _, bot := range c.BotLogins {
		if login == bot {
			return true
		}
	}
	return false
}

// ConfigPath returns the path to the settings file, creating the parent
// directory as needed.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".gitdash")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads the settings file from disk, or returns defaults if the file
// does not exist. Unknown keys are ignored; missing keys keep their
// defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a settings file from an explicit path. Used by Load and
// by the watcher's reload callback.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the settings to disk.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	return nil
}
