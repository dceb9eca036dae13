package deck

import (
	"fmt"
	"strings"
)

// FormatBoardHeading renders a board's heading line.
func FormatBoardHeading(board Board) string {
	return fmt.Sprintf("# %d - %s\n", board.ID, board.Name)
}

// FormatCard renders one card as a markdown fragment:
//
//	## [B007-C12] Fix bug Todo
//	> <details >
//	>     <summary>Details</summary>
//	> Line one.
//	> </details>
//
// The fragment starts with a blank separator line. The board ID is
// zero-padded to three digits; the card ID appears exactly as named on
// disk. Every body line, blanks included, is prefixed with "> ". The
// column's status details are inserted verbatim into the <details> tag, so
// the attribute position is empty ("<details >") when no details exist;
// the details string is not escaped. A card with no body renders no lines
// between the summary and the closing tag.
func FormatCard(boardID int, col Column, card Card) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\n## [B%03d-C%s] %s %s\n", boardID, card.ID, card.Title, col.Label())
	fmt.Fprintf(&builder, "> <details %s>\n", col.Status.Details)
	builder.WriteString(">     <summary>Details</summary>\n")
	for _, line := range card.Body {
		builder.WriteString("> " + line + "\n")
	}
	builder.WriteString("> </details>\n")

	return builder.String()
}

// FormatBoard renders a board's heading followed by every card fragment in
// the board, columns and cards in scan order.
func FormatBoard(board Board) string {
	var builder strings.Builder

	builder.WriteString(FormatBoardHeading(board))
	for _, col := range board.Columns {
		for _, card := range col.Cards {
			builder.WriteString(FormatCard(board.ID, col, card))
		}
	}

	return builder.String()
}
