package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/decker/internal/config"
	"github.com/gorewood/decker/internal/deck"
)

// BoardsInput is the input for the boards tool.
type BoardsInput struct{}

// ColumnSummary describes one column in a boards listing.
type ColumnSummary struct {
	Name  string `json:"name"            jsonschema:"column directory name"`
	Label string `json:"label"           jsonschema:"display label (statustext or directory name)"`
	Cards int    `json:"cards"           jsonschema:"number of cards in the column"`
}

// BoardSummary describes one board in a boards listing.
type BoardSummary struct {
	ID      int             `json:"id"      jsonschema:"numeric board ID"`
	Name    string          `json:"name"    jsonschema:"board directory name"`
	Columns []ColumnSummary `json:"columns" jsonschema:"columns in listing order"`
}

// BoardsOutput is the output for the boards tool.
type BoardsOutput struct {
	Count  int            `json:"count"  jsonschema:"number of boards"`
	Boards []BoardSummary `json:"boards" jsonschema:"boards in listing order"`
}

func handleBoards(cfg config.Config) mcp.ToolHandlerFor[BoardsInput, BoardsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ BoardsInput) (*mcp.CallToolResult, BoardsOutput, error) {
		boards, _, err := deck.ScanTree(cfg)
		if err != nil {
			return nil, BoardsOutput{}, err
		}

		out := BoardsOutput{Count: len(boards)}
		for _, board := range boards {
			summary := BoardSummary{ID: board.ID, Name: board.Name}
			for _, col := range board.Columns {
				summary.Columns = append(summary.Columns, ColumnSummary{
					Name:  col.Name,
					Label: col.Label(),
					Cards: len(col.Cards),
				})
			}
			out.Boards = append(out.Boards, summary)
		}
		return nil, out, nil
	}
}

// CardInput is the input for the card tool.
type CardInput struct {
	Board string `json:"board" jsonschema:"board directory name"`
	Card  string `json:"card"  jsonschema:"card ID (the numeric filename)"`
}

// CardOutput is the output for the card tool.
type CardOutput struct {
	Board         string `json:"board"                    jsonschema:"board directory name"`
	BoardID       int    `json:"board_id"                 jsonschema:"numeric board ID"`
	Column        string `json:"column"                   jsonschema:"column directory name"`
	ID            string `json:"id"                       jsonschema:"card ID"`
	Title         string `json:"title"                    jsonschema:"card title (Untitled when absent)"`
	StatusText    string `json:"status_text,omitempty"    jsonschema:"column status label"`
	StatusDetails string `json:"status_details,omitempty" jsonschema:"column status annotation"`
	Body          string `json:"body"                     jsonschema:"card body text"`
}

func handleCard(cfg config.Config) mcp.ToolHandlerFor[CardInput, CardOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CardInput) (*mcp.CallToolResult, CardOutput, error) {
		if input.Board == "" || input.Card == "" {
			return nil, CardOutput{}, fmt.Errorf("both board and card are required")
		}

		boards, _, err := deck.ScanTree(cfg)
		if err != nil {
			return nil, CardOutput{}, err
		}

		for _, board := range boards {
			if board.Name != input.Board {
				continue
			}
			for _, col := range board.Columns {
				for _, card := range col.Cards {
					if card.ID != input.Card {
						continue
					}
					return nil, CardOutput{
						Board:         board.Name,
						BoardID:       board.ID,
						Column:        col.Name,
						ID:            card.ID,
						Title:         card.Title,
						StatusText:    col.Status.Text,
						StatusDetails: col.Status.Details,
						Body:          strings.Join(card.Body, "\n"),
					}, nil
				}
			}
			return nil, CardOutput{}, fmt.Errorf("card %s not found in board %s", input.Card, input.Board)
		}
		return nil, CardOutput{}, fmt.Errorf("board %s not found", input.Board)
	}
}

// StatusInput is the input for the status tool.
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Root         string `json:"root"          jsonschema:"working tree root"`
	DeckDir      string `json:"deck_dir"      jsonschema:"directory holding board directories"`
	OutputFile   string `json:"output_file"   jsonschema:"rendered document path"`
	OutputExists bool   `json:"output_exists" jsonschema:"whether the rendered document exists"`
	Boards       int    `json:"boards"        jsonschema:"number of boards"`
	Columns      int    `json:"columns"       jsonschema:"number of columns"`
	Cards        int    `json:"cards"         jsonschema:"number of cards"`
	Skipped      int    `json:"skipped"       jsonschema:"column files skipped (not cards)"`
}

func handleStatus(cfg config.Config) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		_, stats, err := deck.ScanTree(cfg)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		_, statErr := os.Stat(cfg.OutputPath())
		return nil, StatusOutput{
			Root:         cfg.Root,
			DeckDir:      cfg.DeckDir,
			OutputFile:   cfg.OutputFile,
			OutputExists: statErr == nil,
			Boards:       stats.Boards,
			Columns:      stats.Columns,
			Cards:        stats.Cards,
			Skipped:      stats.Skipped,
		}, nil
	}
}

// GenerateInput is the input for the generate tool.
type GenerateInput struct {
	Write bool `json:"write,omitempty" jsonschema:"also overwrite the output file on disk"`
}

// GenerateOutput is the output for the generate tool.
type GenerateOutput struct {
	Markdown string `json:"markdown"          jsonschema:"the rendered deck document"`
	Boards   int    `json:"boards"            jsonschema:"number of boards rendered"`
	Cards    int    `json:"cards"             jsonschema:"number of cards rendered"`
	Written  string `json:"written,omitempty" jsonschema:"output file path when write=true"`
}

func handleGenerate(cfg config.Config) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		boards, stats, err := deck.ScanTree(cfg)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		var builder strings.Builder
		if err := deck.WriteDeck(&builder, cfg, boards); err != nil {
			return nil, GenerateOutput{}, err
		}

		out := GenerateOutput{
			Markdown: builder.String(),
			Boards:   stats.Boards,
			Cards:    stats.Cards,
		}

		if input.Write {
			if err := os.WriteFile(cfg.OutputPath(), []byte(out.Markdown), 0600); err != nil {
				return nil, GenerateOutput{}, fmt.Errorf("writing %s: %w", cfg.OutputPath(), err)
			}
			out.Written = cfg.OutputPath()
		}

		return nil, out, nil
	}
}
