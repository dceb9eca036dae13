// Package main provides the entry point for the decker CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/decker/internal/deck"
	"github.com/gorewood/decker/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	Root         string `json:"root"`
	DeckDir      string `json:"deck_dir"`
	OutputFile   string `json:"output_file"`
	OutputExists bool   `json:"output_exists"`
	Boards       int    `json:"boards"`
	Columns      int    `json:"columns"`
	Cards        int    `json:"cards"`
	Skipped      int    `json:"skipped,omitempty"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show board tree and output state",
		Long: `Show the current state of the board tree and the rendered deck.

Displays the resolved paths, board/column/card counts, and whether the
output document exists.

Examples:
  decker status         # Show human-readable status
  decker status --json  # Output status as JSON for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, rootFlag)
		},
	}
	cmd.Flags().StringVar(&rootFlag, "root", "", "Working tree root (default: $DECKER_ROOT or .)")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, rootFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := resolveConfig(rootFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	_, stats, err := deck.ScanTree(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	_, statErr := os.Stat(cfg.OutputPath())
	result := statusResult{
		Root:         cfg.Root,
		DeckDir:      cfg.DeckDir,
		OutputFile:   cfg.OutputFile,
		OutputExists: statErr == nil,
		Boards:       stats.Boards,
		Columns:      stats.Columns,
		Cards:        stats.Cards,
		Skipped:      stats.Skipped,
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Print("Root:    %s\n", result.Root)
	printer.Print("Deck:    %s\n", cfg.DeckPath())
	printer.Print("Output:  %s (exists: %v)\n", cfg.OutputPath(), result.OutputExists)
	printer.Print("Boards:  %d\n", result.Boards)
	printer.Print("Columns: %d\n", result.Columns)
	printer.Print("Cards:   %d\n", result.Cards)
	if result.Skipped > 0 {
		printer.Print("Skipped: %d\n", result.Skipped)
	}
	return nil
}
