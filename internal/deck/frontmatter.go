package deck

import (
	"os"
	"strings"
)

// delimiter is the line that opens and closes a front-matter block.
const delimiter = "---"

// ParseHeaders extracts key/value pairs from the front-matter block at the
// start of content. Only the first delimited block is consumed: scanning
// stops at the closing delimiter. Within the block, each non-empty line is
// split on its first ':'; both sides are trimmed. Lines without a ':' yield
// an empty value, empty keys are discarded, and a repeated key keeps the
// last occurrence.
//
// Content with no delimiter lines yields an empty map. Content whose block
// is never closed yields whatever header lines precede EOF.
func ParseHeaders(content string) map[string]string {
	headers := make(map[string]string)
	inside := false

	for _, line := range splitLines(content) {
		if line == delimiter {
			if inside {
				break
			}
			inside = true
			continue
		}
		if !inside || line == "" {
			continue
		}

		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		headers[key] = strings.TrimSpace(value)
	}

	return headers
}

// ExtractBody returns the lines strictly after the second delimiter,
// verbatim and in order, blank lines included. Content with fewer than two
// delimiter lines has no body.
func ExtractBody(content string) []string {
	var body []string
	inside := false
	closed := false

	for _, line := range splitLines(content) {
		if closed {
			body = append(body, line)
			continue
		}
		if line == delimiter {
			if inside {
				closed = true
			} else {
				inside = true
			}
		}
	}

	return body
}

// readHeaders parses headers from a file, treating a missing or unreadable
// file as having none. Status sidecars rely on this tolerance.
func readHeaders(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}
	}
	return ParseHeaders(string(data))
}

// splitLines splits content into lines without terminators. A trailing
// newline does not produce a final empty line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
