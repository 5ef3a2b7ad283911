package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`
	// Info is optional and defaults to the primary color.
	Info string `yaml:"info,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Version == "" {
		return errors.New("theme version is required")
	}

	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	requiredColors := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}

	for name, color := range requiredColors {
		if color == "" {
			return fmt.Errorf("color '%s' is required", name)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	if t.Colors.Info != "" && !isValidHexColor(t.Colors.Info) {
		return fmt.Errorf("color 'info' has invalid format: %s (expected #RGB or #RRGGBB)", t.Colors.Info)
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// Apply replaces the package color variables and rebuilds every derived
// style. The default theme remains active until Apply is called.
func (t *ThemeFile) Apply() {
	PrimaryColor = lipgloss.Color(t.Colors.Primary)
	SecondaryColor = lipgloss.Color(t.Colors.Secondary)
	WarningColor = lipgloss.Color(t.Colors.Warning)
	ErrorColor = lipgloss.Color(t.Colors.Error)
	MutedColor = lipgloss.Color(t.Colors.Muted)
	SurfaceColor = lipgloss.Color(t.Colors.Surface)
	TextColor = lipgloss.Color(t.Colors.Text)
	BorderColor = lipgloss.Color(t.Colors.Border)
	InfoColor = colorOrDefault(t.Colors.Info, t.Colors.Primary)

	rebuildStyles()
}

// colorOrDefault returns the color if non-empty, otherwise the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// DefaultThemeName is the built-in theme; it needs no theme file.
const DefaultThemeName = "default"

// themesDirFn is the function that returns the themes directory.
// This can be overridden in tests.
var themesDirFn = defaultThemesDir

// defaultThemesDir returns the default themes directory path.
func defaultThemesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teamdeck", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".teamdeck", "themes")
	}
	return filepath.Join(home, ".config", "teamdeck", "themes")
}

// ThemesDir returns the directory where custom themes are stored.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc sets the function used to determine the themes directory.
// This is primarily useful for testing. Returns the previous function.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// ApplyNamed activates the named theme. The default theme is built in;
// any other name resolves to {ThemesDir}/{name}.yaml (or .yml).
func ApplyNamed(name string) error {
	if name == "" || name == DefaultThemeName {
		return nil
	}

	dir := ThemesDir()
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		theme, err := LoadThemeFile(path)
		if err != nil {
			return err
		}
		theme.Apply()
		return nil
	}

	return fmt.Errorf("theme '%s' not found in %s", name, dir)
}

// AvailableThemes lists the default theme plus every theme file found in
// the themes directory. A missing directory is not an error.
func AvailableThemes() []string {
	names := []string{DefaultThemeName}

	entries, err := os.ReadDir(ThemesDir())
	if err != nil {
		return names
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		names = append(names, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
	}

	return names
}
