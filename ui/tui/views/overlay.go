package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg on top of bg with its top-left corner at column x, row y.
// Both may contain ANSI styling; cells of bg outside fg are kept.
func Overlay(bg, fg string, x, y int) string {
	if fg == "" || x < 0 || y < 0 {
		return bg
	}
	lines := strings.Split(bg, "\n")
	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		for len(lines) <= row {
			lines = append(lines, "")
		}
		line := lines[row]
		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(fgLine), "")
		lines[row] = left + ansi.ResetStyle + fgLine + ansi.ResetStyle + right
	}
	return strings.Join(lines, "\n")
}
