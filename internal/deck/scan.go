package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorewood/decker/internal/config"
	"github.com/gorewood/decker/internal/output"
)

// ScanTree walks the board tree under cfg.DeckPath() and builds the deck
// model without rendering anything. Boards, columns, and cards are visited
// in lexicographic name order, which fixes the document order regardless of
// what the filesystem would otherwise yield.
func ScanTree(cfg config.Config) ([]Board, ScanStats, error) {
	var stats ScanStats

	deckPath := cfg.DeckPath()
	entries, err := os.ReadDir(deckPath)
	if err != nil {
		return nil, stats, output.NewSystemErrorWithCause(
			fmt.Sprintf("reading deck directory %s", deckPath), err)
	}

	var boards []Board
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		board, err := scanBoard(filepath.Join(deckPath, entry.Name()), entry.Name(), &stats)
		if err != nil {
			return nil, stats, err
		}
		boards = append(boards, board)
		stats.Boards++
	}

	return boards, stats, nil
}

// scanBoard reads a board's .id sidecar and its column directories.
func scanBoard(dir, name string, stats *ScanStats) (Board, error) {
	id, err := readBoardID(filepath.Join(dir, BoardIDFile))
	if err != nil {
		return Board{}, output.NewUserError(fmt.Sprintf("board %s: %v", name, err))
	}

	board := Board{ID: id, Name: name}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Board{}, output.NewSystemErrorWithCause(
			fmt.Sprintf("reading board directory %s", dir), err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		board.Columns = append(board.Columns,
			scanColumn(filepath.Join(dir, entry.Name()), entry.Name(), stats))
		stats.Columns++
	}

	return board, nil
}

// readBoardID parses the single integer in a board's .id file.
func readBoardID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("missing %s sidecar: %w", BoardIDFile, err)
	}
	id, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s sidecar: %w", BoardIDFile, err)
	}
	return id, nil
}

// scanColumn reads a column's optional .status sidecar and its card files.
// Files that are not cards, and cards that cannot be read, are counted as
// skipped rather than failing the scan.
func scanColumn(dir, name string, stats *ScanStats) Column {
	statusHeaders := readHeaders(filepath.Join(dir, StatusFile))
	col := Column{
		Name: name,
		Status: Status{
			Text:    statusHeaders[statusTextKey],
			Details: statusHeaders[statusDetailsKey],
		},
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return col
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !IsCardName(entry.Name()) {
			stats.Skipped++
			continue
		}
		card, err := readCard(filepath.Join(dir, entry.Name()), entry.Name())
		if err != nil {
			stats.Skipped++
			continue
		}
		col.Cards = append(col.Cards, card)
		stats.Cards++
	}

	return col
}

// readCard parses one card file into headers, title, and body.
func readCard(path, id string) (Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Card{}, fmt.Errorf("reading card %s: %w", path, err)
	}

	content := string(data)
	headers := ParseHeaders(content)

	title := headers[titleKey]
	if title == "" {
		title = DefaultTitle
	}

	return Card{
		ID:      id,
		Title:   title,
		Body:    ExtractBody(content),
		Headers: headers,
	}, nil
}
