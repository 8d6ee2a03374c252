package shared

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateColumn cuts s to at most width terminal columns without adding an
// ellipsis. Wide runes count as two columns.
func TruncateColumn(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// Preview cuts s to width columns and always appends "...", so a preview
// reads as an excerpt even when nothing was cut.
func Preview(s string, width int) string {
	return TruncateColumn(s, width) + "..."
}

// PadLeft right-aligns s in a field of width columns.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// PadRight left-aligns s in a field of width columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateLines limits the string to at most max lines, splitting on \n.
// If max <= 0 or the input has fewer lines, the original string is returned.
func TruncateLines(s string, max int) string {
	if max <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}
