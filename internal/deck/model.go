// Package deck implements the card tree model and the markdown deck
// renderer: boards hold columns, columns hold numerically-named card files,
// and the whole tree renders to a single aggregated document.
package deck

import "regexp"

// DefaultTitle is used when a card has no Title header.
const DefaultTitle = "Untitled"

// Sidecar file names inside the tree.
const (
	// BoardIDFile holds a board's numeric ID, one integer per board directory.
	BoardIDFile = ".id"
	// StatusFile is the optional per-column status sidecar.
	StatusFile = ".status"
)

// Header keys recognized in card and status front-matter.
const (
	titleKey         = "Title"
	statusTextKey    = "statustext"
	statusDetailsKey = "statusdetails"
)

// cardNamePattern matches card filenames: 1 to 4 ASCII digits, nothing else.
var cardNamePattern = regexp.MustCompile(`^[0-9]{1,4}$`)

// IsCardName reports whether a filename names a card.
func IsCardName(name string) bool {
	return cardNamePattern.MatchString(name)
}

// Board is a top-level grouping of columns, identified by the numeric ID
// from its .id sidecar and named by its directory.
type Board struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Column is a workflow stage within a board, named by its directory.
type Column struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Cards  []Card `json:"cards"`
}

// Status carries the optional display label and annotation from a column's
// .status sidecar. Both fields are empty when the sidecar is absent.
type Status struct {
	Text    string `json:"text,omitempty"`
	Details string `json:"details,omitempty"`
}

// Label returns the column's display label: the status text when present,
// else the directory name.
func (c Column) Label() string {
	if c.Status.Text != "" {
		return c.Status.Text
	}
	return c.Name
}

// Card is a single unit of work. ID is the filename verbatim, so its width
// varies from 1 to 4 digits.
type Card struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Body    []string          `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// ScanStats counts what a tree scan encountered.
type ScanStats struct {
	Boards  int `json:"boards"`
	Columns int `json:"columns"`
	Cards   int `json:"cards"`
	Skipped int `json:"skipped"` // column files that are not cards
}
