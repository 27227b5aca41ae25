package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fec-analyzer/cli/cmd/auth"
	configcmd "github.com/fec-analyzer/cli/cmd/config"
	"github.com/fec-analyzer/cli/cmd/fec"
	appConfig "github.com/fec-analyzer/cli/internal/config"
)

var (
	cfgFile string
	debug   bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fec-cli",
	Short: "FEC Analyzer CLI - upload accounting exports and view summaries",
	Long: `FEC Analyzer CLI uploads French accounting export files (FEC) to the
FEC Analyzer backend and displays the computed summaries: balance
générale, bilan and compte de résultat.

All processing happens server-side; the CLI authenticates, submits
files and renders the results.`,
	Version:      "1.0.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := appConfig.Initialize(cfgFile); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		if debug {
			appConfig.SetDebug(true)
		}

		if output != "" {
			appConfig.SetOutputFormat(output)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fec-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format (table, json, yaml, text)")

	// Add subcommands
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(fec.FecCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
}
