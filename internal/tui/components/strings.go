package components

import (
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// TruncateString shortens s to at most width terminal cells, marking the cut
// with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// FitCell truncates s and pads it on the right to exactly width cells.
func FitCell(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
