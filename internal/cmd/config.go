package cmd

import (
	"fmt"
	"os"

	"teamdeck/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Config prints the effective configuration after merging defaults, the
config file and TEAMDECK_* environment variables, plus where each piece of
state lives on disk.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configFile := config.ConfigFile()
	if _, statErr := os.Stat(configFile); statErr != nil {
		configFile += " (not present, using defaults)"
	}

	cmd.Println("Config file:  " + configFile)
	cmd.Println("State dir:    " + cfg.Paths.ResolveStateDir())
	cmd.Println()
	cmd.Printf("api.base_url:         %s\n", cfg.API.BaseURL)
	cmd.Printf("api.timeout_seconds:  %d\n", cfg.API.TimeoutSeconds)
	cmd.Printf("api.page_size:        %d\n", cfg.API.PageSize)
	cmd.Printf("tui.theme:            %s\n", cfg.TUI.Theme)
	cmd.Printf("tui.show_members:     %t\n", cfg.TUI.ShowMembers)
	cmd.Printf("logging.enabled:      %t\n", cfg.Logging.Enabled)
	cmd.Printf("logging.level:        %s\n", cfg.Logging.Level)
	return nil
}
