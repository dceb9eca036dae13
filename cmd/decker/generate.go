// Package main provides the entry point for the decker CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/decker/internal/deck"
	"github.com/gorewood/decker/internal/output"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var rootFlag string
	var deckDirFlag string
	var overviewFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the deck document from the board tree",
		Long: `Walk the board tree and write the aggregated deck document.

The output file is fully overwritten on each run; re-running on an unchanged
tree produces byte-identical output.

Examples:
  decker generate                     # Render using .decker.yml / defaults
  decker generate --root ~/proj       # Render a different working tree
  decker generate --out REPORT.md     # Write to a different output file
  decker generate --json              # Structured result summary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, rootFlag, deckDirFlag, overviewFlag, outFlag)
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", "Working tree root (default: $DECKER_ROOT or .)")
	cmd.Flags().StringVar(&deckDirFlag, "deck-dir", "", "Directory holding board directories, relative to root")
	cmd.Flags().StringVar(&overviewFlag, "overview", "", "Overview preamble file, relative to root")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output file, relative to root")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, rootFlag, deckDirFlag, overviewFlag, outFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := resolveConfig(rootFlag)
	if err != nil {
		printer.Error(err)
		return err
	}
	if deckDirFlag != "" {
		cfg.DeckDir = deckDirFlag
	}
	if overviewFlag != "" {
		cfg.OverviewFile = overviewFlag
	}
	if outFlag != "" {
		cfg.OutputFile = outFlag
	}

	stats, err := deck.Generate(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"output":  cfg.OutputPath(),
			"boards":  stats.Boards,
			"columns": stats.Columns,
			"cards":   stats.Cards,
			"skipped": stats.Skipped,
		})
	}

	printer.Print("Wrote %s: %d boards, %d columns, %d cards\n",
		cfg.OutputPath(), stats.Boards, stats.Columns, stats.Cards)
	return nil
}
