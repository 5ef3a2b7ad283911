// Package cmd defines the teamdeck command line interface.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"teamdeck/internal/api"
	"teamdeck/internal/config"
	"teamdeck/internal/logging"
	"teamdeck/internal/store"
	"teamdeck/internal/teams"
	"teamdeck/internal/tui"
	"teamdeck/internal/tui/styles"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "teamdeck",
	Short: "Manage challenge host teams from the terminal",
	Long: `Teamdeck is a terminal UI for challenge host teams: browse the paginated
team list, create teams, invite members by email and leave teams you no
longer host.`,
	RunE: runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/teamdeck/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/teamdeck")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TEAMDECK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TEAMDECK_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// runRoot wires the client, store, logger and controller together and runs
// the TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stateDir := cfg.Paths.ResolveStateDir()

	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger(stateDir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
	}
	defer func() { _ = log.Close() }()

	fileStore, err := store.NewFileStore(stateDir)
	if err != nil {
		return err
	}

	token, err := fileStore.Get(store.KeyAuthToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errors.New("not logged in. Run 'teamdeck login <token>' first")
		}
		return err
	}

	if err := styles.ApplyNamed(cfg.TUI.Theme); err != nil {
		// A broken theme should not keep the user out of the UI.
		log.Warn("failed to apply theme", "theme", cfg.TUI.Theme, "error", err)
	}

	client := api.NewClient(cfg.API.BaseURL, token, api.WithTimeout(cfg.API.Timeout()))

	bridge := tui.NewBridge()
	ctrl := teams.NewController(teams.Deps{
		Dispatcher: client,
		Loader:     bridge,
		Notifier:   bridge,
		Navigator:  bridge,
		Dialogs:    bridge,
		Store:      fileStore,
		Logger:     log.WithView("teams"),
		PageSize:   cfg.API.PageSize,
	})

	log.Info("starting teamdeck", "base_url", cfg.API.BaseURL)

	app := tui.New(ctrl, bridge, fileStore, cfg.TUI, log)
	return app.Run()
}
