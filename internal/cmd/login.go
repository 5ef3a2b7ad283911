package cmd

import (
	"errors"
	"fmt"
	"strings"

	"teamdeck/internal/config"
	"teamdeck/internal/store"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <token>",
	Short: "Store the API token used to authenticate requests",
	Long: `Login stores the platform API token in the local state directory. Get the
token from your account settings on the challenge platform; every request
teamdeck makes carries it as "Authorization: Token <token>".`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored API token",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	token := strings.TrimSpace(args[0])
	if token == "" {
		return errors.New("token cannot be empty")
	}

	cfg := config.Get()
	fileStore, err := store.NewFileStore(cfg.Paths.ResolveStateDir())
	if err != nil {
		return err
	}

	if err := fileStore.Set(store.KeyAuthToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	cmd.Println("Logged in. Run 'teamdeck' to manage your host teams.")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	fileStore, err := store.NewFileStore(cfg.Paths.ResolveStateDir())
	if err != nil {
		return err
	}

	if err := fileStore.Delete(store.KeyAuthToken); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}

	cmd.Println("Logged out.")
	return nil
}
