package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete teamdeck configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// APIConfig controls how the challenge platform API is reached
type APIConfig struct {
	// BaseURL is the API root, e.g. "https://eval.ai/api"
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// PageSize is the server's listing page size, used to derive the last
	// page number from a result count
	PageSize int `mapstructure:"page_size"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Either a built-in name or the path of a YAML theme file
	Theme string `mapstructure:"theme"`
	// ShowMembers renders each team's member list in the team table
	ShowMembers bool `mapstructure:"show_members"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// PathsConfig controls where teamdeck stores data
type PathsConfig struct {
	// StateDir is the directory for the token store and log file.
	// If empty, defaults to "state" under the config directory.
	// Supports ~ for home directory expansion.
	StateDir string `mapstructure:"state_dir"`
}

// ResolveStateDir returns the resolved state directory path.
// If StateDir is empty, it returns the default under the config directory.
// If StateDir starts with ~, it expands to the user's home directory.
func (p *PathsConfig) ResolveStateDir() string {
	if p.StateDir == "" {
		return filepath.Join(ConfigDir(), "state")
	}

	path := p.StateDir
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	} else if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://eval.ai/api",
			TimeoutSeconds: 30,
			PageSize:       10,
		},
		TUI: TUIConfig{
			Theme:       "default",
			ShowMembers: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		Paths: PathsConfig{
			StateDir: "", // Empty means use default: <config dir>/state
		},
	}
}

// Timeout returns the API timeout as a time.Duration
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	viper.SetDefault("api.page_size", defaults.API.PageSize)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_members", defaults.TUI.ShowMembers)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	// Paths defaults
	viper.SetDefault("paths.state_dir", defaults.Paths.StateDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teamdeck")
	}
	// Fall back to ~/.config/teamdeck
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamdeck"
	}
	return filepath.Join(home, ".config", "teamdeck")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
