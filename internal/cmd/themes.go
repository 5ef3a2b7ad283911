package cmd

import (
	"teamdeck/internal/tui/styles"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long: `Themes lists the built-in theme plus every YAML theme file found in the
themes directory. Select one with tui.theme in the config file or
TEAMDECK_TUI_THEME.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	cmd.Println("Themes directory: " + styles.ThemesDir())
	cmd.Println()
	for _, name := range styles.AvailableThemes() {
		cmd.Println("  " + name)
	}
	return nil
}
