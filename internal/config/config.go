// internal/config/config.go
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config represents the application configuration
type Config struct {
	Theme              string       `toml:"theme"` // "dark" or "light"
	QueryTimeoutSecs   int          `toml:"query_timeout_secs"`
	HistoryPreviewRows int          `toml:"history_preview_rows"`
	Overscan           int          `toml:"overscan"`
	HighlightStyle     string       `toml:"highlight_style"`
	Connections        []Connection `toml:"connections"`
	Colors             Theme        `toml:"theme_colors"`
	Keys               KeyMap       `toml:"keys"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Warning       string `toml:"warning"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Execute      []string `toml:"execute"`
	Exit         []string `toml:"exit"`
	Autocomplete []string `toml:"autocomplete"`
	History      []string `toml:"history"`
	Schema       []string `toml:"schema"`
	Help         []string `toml:"help"`
	FocusNext    []string `toml:"focus_next"`
}

// Connection is a saved database connection. Credentials belong in the
// DSN or the environment, not here.
type Connection struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"` // postgres, mysql, sqlite
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Database string `toml:"database"`
}

// DarkTheme is the default palette (Nord).
func DarkTheme() Theme {
	return Theme{
		TextPrimary:   "#D8DEE9",
		TextSecondary: "#81A1C1",
		TextFaint:     "#4C566A",
		Accent:        "#88C0D0",
		Success:       "#A3BE8C",
		Error:         "#BF616A",
		Highlight:     "#8FBCBB",
		Warning:       "#D08770",
		BgPrimary:     "#2E3440",
		BgSecondary:   "#3B4252",
		CardBg:        "#434C5E",
	}
}

// LightTheme is the light palette.
func LightTheme() Theme {
	return Theme{
		TextPrimary:   "#2E3440",
		TextSecondary: "#4C566A",
		TextFaint:     "#9099AB",
		Accent:        "#5E81AC",
		Success:       "#4F7942",
		Error:         "#A3323C",
		Highlight:     "#3B6EA5",
		Warning:       "#B35C37",
		BgPrimary:     "#ECEFF4",
		BgSecondary:   "#E5E9F0",
		CardBg:        "#D8DEE9",
	}
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Theme:              "dark",
		QueryTimeoutSecs:   30,
		HistoryPreviewRows: 3,
		Overscan:           10,
		HighlightStyle:     "nord",
		Connections:        []Connection{},
		Colors:             DarkTheme(),
		Keys: KeyMap{
			Execute:      []string{"ctrl+d"},
			Exit:         []string{"esc", "ctrl+c", "q"},
			Autocomplete: []string{"ctrl+@", "ctrl+space"},
			History:      []string{"ctrl+r"},
			Schema:       []string{"ctrl+s"},
			Help:         []string{"?"},
			FocusNext:    []string{"tab"},
		},
	}
}

// Palette resolves the active colors: an explicit theme_colors block wins,
// otherwise the named theme is used.
func (c *Config) Palette() Theme {
	if c.Colors.TextPrimary != "" {
		return c.Colors
	}
	if c.Theme == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("sqlpane/config.toml")
}

// Load loads the config from disk or creates default
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Populate defaults for missing fields (migration)
	defaults := DefaultConfig()
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}
	if cfg.QueryTimeoutSecs <= 0 {
		cfg.QueryTimeoutSecs = defaults.QueryTimeoutSecs
	}
	if cfg.HistoryPreviewRows <= 0 {
		cfg.HistoryPreviewRows = defaults.HistoryPreviewRows
	}
	if cfg.Overscan <= 0 {
		cfg.Overscan = defaults.Overscan
	}
	if cfg.HighlightStyle == "" {
		cfg.HighlightStyle = defaults.HighlightStyle
	}
	if len(cfg.Keys.Execute) == 0 {
		cfg.Keys = defaults.Keys
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
