package deck

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gorewood/decker/internal/config"
	"github.com/gorewood/decker/internal/output"
)

// WriteDeck renders the full deck document for the given boards: the
// overview file's contents verbatim (empty if absent), then each board's
// heading and card fragments.
func WriteDeck(w io.Writer, cfg config.Config, boards []Board) error {
	overview, err := readOverview(cfg.OverviewPath())
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, overview); err != nil {
		return output.NewSystemErrorWithCause("writing deck document", err)
	}

	for _, board := range boards {
		if _, err := io.WriteString(w, FormatBoard(board)); err != nil {
			return output.NewSystemErrorWithCause("writing deck document", err)
		}
	}

	return nil
}

// Generate scans the tree and writes the rendered document to
// cfg.OutputPath(), truncating any previous run's output. The result is
// deterministic for an unchanged tree, so re-running is safe.
func Generate(cfg config.Config) (ScanStats, error) {
	boards, stats, err := ScanTree(cfg)
	if err != nil {
		return stats, err
	}

	out, err := os.Create(cfg.OutputPath())
	if err != nil {
		return stats, output.NewSystemErrorWithCause(
			fmt.Sprintf("creating output file %s", cfg.OutputPath()), err)
	}

	if err := WriteDeck(out, cfg, boards); err != nil {
		_ = out.Close()
		return stats, err
	}
	if err := out.Close(); err != nil {
		return stats, output.NewSystemErrorWithCause(
			fmt.Sprintf("closing output file %s", cfg.OutputPath()), err)
	}

	return stats, nil
}

// readOverview returns the overview file's contents, or empty when the
// file does not exist.
func readOverview(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", output.NewSystemErrorWithCause(
			fmt.Sprintf("reading overview file %s", path), err)
	}
	return string(data), nil
}
