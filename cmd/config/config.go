package config

import (
	"fmt"

	"github.com/spf13/cobra"

	appConfig "github.com/fec-analyzer/cli/internal/config"
	"github.com/fec-analyzer/cli/internal/format"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "CLI configuration commands",
	Long: `CLI configuration commands for the FEC Analyzer CLI.

This command group shows the current configuration and sets individual
values. The session token is not part of the configuration; it lives in
the credential store.`,
}

// showCmd displays the current configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runShow,
}

// setCmd sets a configuration value
var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value, e.g. 'config set server.url http://localhost:8001'",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

func runShow(cmd *cobra.Command, args []string) error {
	return format.Print(appConfig.Get())
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "server.url", "server.timeout", "format.default", "format.colors":
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := appConfig.Set(key, value); err != nil {
		return err
	}

	format.PrintSuccess("✓ %s = %s", key, value)
	return nil
}

func init() {
	ConfigCmd.AddCommand(showCmd)
	ConfigCmd.AddCommand(setCmd)
}
