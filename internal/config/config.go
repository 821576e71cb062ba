// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/toastbox/internal/style"
	"github.com/jmylchreest/toastbox/internal/toast"
)

// Default configuration values. The anchor default is a policy choice and
// can be overridden in the config file.
const (
	DefaultAnchor     = "top-right"
	DefaultShowTime   = "5s"
	DefaultFade       = "500ms"
	DefaultBackground = "#1d2021"
	DefaultText       = "#ffffff"
	DefaultFPS        = 30
)

// Config represents the toastbox configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Colors   ColorsConfig   `toml:"colors"`
	Demo     DemoConfig     `toml:"demo"`
}

// DefaultsConfig holds the policy defaults applied to requests that do not
// set the corresponding field.
type DefaultsConfig struct {
	Anchor   string `toml:"anchor"`    // One of the nine anchor names
	ShowTime string `toml:"show_time"` // Duration string; "0s" means indefinite
	Fade     string `toml:"fade"`      // Fade-in/out duration
}

// ColorsConfig holds the default toast colors as hex strings.
type ColorsConfig struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
}

// DemoConfig holds settings for the demo host.
type DemoConfig struct {
	FPS int `toml:"fps"` // Frame rate of the demo's tick loop
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Anchor:   DefaultAnchor,
			ShowTime: DefaultShowTime,
			Fade:     DefaultFade,
		},
		Colors: ColorsConfig{
			Background: DefaultBackground,
			Text:       DefaultText,
		},
		Demo: DemoConfig{
			FPS: DefaultFPS,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toastbox", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// BaseRequest converts the configured defaults into a request prototype.
// Callers copy it and fill in their message.
func (c *Config) BaseRequest() (toast.Request, error) {
	req := toast.DefaultRequest()

	anchor, err := toast.ParseAnchor(c.Defaults.Anchor)
	if err != nil {
		return req, err
	}
	req.Anchor = anchor

	showTime, err := time.ParseDuration(c.Defaults.ShowTime)
	if err != nil {
		return req, fmt.Errorf("invalid show_time: %w", err)
	}
	req.ShowTime = showTime

	bg, err := style.ParseHex(c.Colors.Background)
	if err != nil {
		return req, err
	}
	req.Background = bg

	return req, nil
}

// TextColor parses the configured default text color.
func (c *Config) TextColor() (style.Color, error) {
	return style.ParseHex(c.Colors.Text)
}

// FadeDuration parses the configured fade duration.
func (c *Config) FadeDuration() (time.Duration, error) {
	fade, err := time.ParseDuration(c.Defaults.Fade)
	if err != nil {
		return 0, fmt.Errorf("invalid fade: %w", err)
	}
	return fade, nil
}

// Validate checks that every configured value parses.
func (c *Config) Validate() error {
	if _, err := c.BaseRequest(); err != nil {
		return err
	}
	if _, err := c.TextColor(); err != nil {
		return err
	}
	if _, err := c.FadeDuration(); err != nil {
		return err
	}
	if c.Demo.FPS <= 0 {
		return fmt.Errorf("demo fps must be positive, got %d", c.Demo.FPS)
	}
	return nil
}
