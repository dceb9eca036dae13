// Package main provides the entry point for the decker CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/decker/internal/deck"
	"github.com/gorewood/decker/internal/output"
)

// newBoardsCmd creates the boards command.
func newBoardsCmd() *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List boards, columns, and card counts",
		Long: `List every board in the tree with its columns and card counts.

Columns show their display label when a .status sidecar overrides the
directory name.

Examples:
  decker boards         # Human-readable table
  decker boards --json  # Structured listing`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoards(cmd, rootFlag)
		},
	}
	cmd.Flags().StringVar(&rootFlag, "root", "", "Working tree root (default: $DECKER_ROOT or .)")
	return cmd
}

// runBoards executes the boards command.
func runBoards(cmd *cobra.Command, rootFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	cfg, err := resolveConfig(rootFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	boards, _, err := deck.ScanTree(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":  len(boards),
			"boards": boards,
		})
	}

	if len(boards) == 0 {
		printer.Println("No boards found under", cfg.DeckPath())
		return nil
	}

	headers := []string{"BOARD", "ID", "COLUMN", "CARDS"}
	var rows [][]string
	for _, board := range boards {
		if len(board.Columns) == 0 {
			rows = append(rows, []string{board.Name, strconv.Itoa(board.ID), "-", "0"})
			continue
		}
		for i, col := range board.Columns {
			name, id := board.Name, strconv.Itoa(board.ID)
			if i > 0 {
				name, id = "", ""
			}
			rows = append(rows, []string{name, id, col.Label(), strconv.Itoa(len(col.Cards))})
		}
	}
	printer.Table(headers, rows)
	return nil
}
