// Package styles defines the color palette and lipgloss styles shared by
// the terminal UI. The defaults meet WCAG AA contrast (4.5:1) on dark
// terminals; a custom theme file can replace them via Apply.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors of the active theme.
var (
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	InfoColor      = lipgloss.Color("#60A5FA") // Blue
)

// Styles derived from the active theme. Rebuilt whenever a theme is applied.
var (
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style
	Info      lipgloss.Style

	Header lipgloss.Style

	Row         lipgloss.Style
	RowSelected lipgloss.Style

	SuccessMsg lipgloss.Style
	ErrorMsg   lipgloss.Style
	InfoMsg    lipgloss.Style

	Dialog     lipgloss.Style
	FormBox    lipgloss.Style
	FieldError lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles reconstructs every derived style from the current colors.
func rebuildStyles() {
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)
	Info = lipgloss.NewStyle().Foreground(InfoColor)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1)

	Row = lipgloss.NewStyle().
		Foreground(TextColor)

	RowSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(SurfaceColor)

	SuccessMsg = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	ErrorMsg = lipgloss.NewStyle().
		Bold(true).
		Foreground(ErrorColor)

	InfoMsg = lipgloss.NewStyle().
		Foreground(InfoColor)

	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2).
		Width(50)

	FormBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	FieldError = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Italic(true)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
}

// NotificationStyle returns the style for a notification level name as
// produced by teams.Level.String().
func NotificationStyle(level string) lipgloss.Style {
	switch level {
	case "success":
		return SuccessMsg
	case "error":
		return ErrorMsg
	default:
		return InfoMsg
	}
}
