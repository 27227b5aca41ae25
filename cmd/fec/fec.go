package fec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fec-analyzer/cli/internal/app"
	"github.com/fec-analyzer/cli/internal/format"
)

// FecCmd represents the fec command
var FecCmd = &cobra.Command{
	Use:   "fec",
	Short: "Accounting export processing commands",
	Long: `Accounting export (FEC) processing commands.

This command group uploads export files, generates server-side samples,
and displays processing history and computed summaries. All commands
require a logged-in session.`,
}

// uploadCmd uploads a FEC file for processing
var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an accounting export file",
	Long:  "Upload a FEC file to the backend for parsing and summary computation",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

// generateCmd generates a sample export server-side
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sample export",
	Long: `Generate a sample FEC server-side and run it through processing.
With --sample, download the generated file instead of processing it.`,
	RunE: runGenerate,
}

// historyCmd lists processed files
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List processed files",
	Long:  "List the files this account has processed, newest first",
	RunE:  runHistory,
}

// showCmd shows the computed result for one file
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a processing result",
	Long:  "Display the balance générale, bilan and compte de résultat for a processed file",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	a := app.New(nil)
	if _, err := a.RequireAuth(cmd.Context()); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	format.PrintInfo("Uploading %s...", filepath.Base(path))
	result, err := a.Client.Upload(cmd.Context(), f, filepath.Base(path))
	if err != nil {
		return err
	}

	format.PrintSuccess("✓ Processed %d entries", result.NbLignes)
	return format.Print(result)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	lines, _ := cmd.Flags().GetInt("lines")
	sample, _ := cmd.Flags().GetBool("sample")
	outPath, _ := cmd.Flags().GetString("out")

	if lines <= 0 {
		return fmt.Errorf("--lines must be positive")
	}

	a := app.New(nil)
	if _, err := a.RequireAuth(cmd.Context()); err != nil {
		return err
	}

	if sample {
		if outPath == "" {
			outPath = "sample.csv"
		}
		data, err := a.Client.GenerateSample(cmd.Context(), lines)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("could not write %s: %w", outPath, err)
		}
		format.PrintSuccess("✓ Sample written to %s (%d bytes)", outPath, len(data))
		return nil
	}

	format.PrintInfo("Generating and processing %d entries...", lines)
	result, err := a.Client.GenerateAndProcess(cmd.Context(), lines)
	if err != nil {
		return err
	}

	format.PrintSuccess("✓ Processed %d entries", result.NbLignes)
	return format.Print(result)
}

func runHistory(cmd *cobra.Command, args []string) error {
	a := app.New(nil)
	if _, err := a.RequireAuth(cmd.Context()); err != nil {
		return err
	}

	items, err := a.Client.History(cmd.Context())
	if err != nil {
		return err
	}

	return format.Print(items)
}

func runShow(cmd *cobra.Command, args []string) error {
	a := app.New(nil)
	if _, err := a.RequireAuth(cmd.Context()); err != nil {
		return err
	}

	detail, err := a.Client.Detail(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return format.Print(detail)
}

func init() {
	generateCmd.Flags().Int("lines", 100, "number of entries to generate")
	generateCmd.Flags().Bool("sample", false, "download the generated file instead of processing it")
	generateCmd.Flags().String("out", "", "output path for --sample (default sample.csv)")

	FecCmd.AddCommand(uploadCmd)
	FecCmd.AddCommand(generateCmd)
	FecCmd.AddCommand(historyCmd)
	FecCmd.AddCommand(showCmd)
}
