package console

import (
	"fmt"
	"io"
	"strings"

	"prodtable/internal/output"
	"prodtable/internal/rating"
	"prodtable/internal/table"

	"github.com/charmbracelet/x/ansi"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Report is everything the plain-text table needs.
type Report struct {
	Title   string
	Grid    table.Grid
	Columns table.Set
	Widths  table.Widths
	Summary output.Summary
	Color   bool
}

// Print renders the product table once, followed by a one-line summary.
func Print(w io.Writer, r Report) {
	paint := func(color, s string) string {
		if !r.Color {
			return s
		}
		return color + s + colorReset
	}

	widths := make([]int, len(r.Grid.Header))
	for i, h := range r.Grid.Header {
		widths[i] = r.Widths.Of(r.Columns, h.ID)
	}

	fmt.Fprintf(w, "%s\n", paint(colorCyan, "■ "+r.Title))

	labels := make([]string, len(r.Grid.Header))
	for i, h := range r.Grid.Header {
		labels[i] = fit(h.Label, widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(labels, " "), " "))

	rules := make([]string, len(widths))
	for i, n := range widths {
		rules[i] = strings.Repeat("─", n)
	}
	fmt.Fprintln(w, paint(colorCyan, strings.Join(rules, " ")))

	for _, row := range r.Grid.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cell := fit(table.Text(c), widths[i])
			if c.Kind == table.KindSlider {
				cell = paint(colorFor(rating.Grade(c.Value)), cell)
			}
			cells[i] = cell
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	s := r.Summary
	fmt.Fprintf(w, "%s: %d products | mean quality %.2f | %s %d  %s %d  %s %d\n",
		paint(colorCyan, "─ Summary"),
		s.Count, s.MeanQuality,
		paint(colorFor(rating.GradeLow), rating.GradeLow), s.Grades[rating.GradeLow],
		paint(colorFor(rating.GradeFair), rating.GradeFair), s.Grades[rating.GradeFair],
		paint(colorFor(rating.GradeHigh), rating.GradeHigh), s.Grades[rating.GradeHigh],
	)
}

// fit truncates or pads s to exactly n cells.
func fit(s string, n int) string {
	s = ansi.Truncate(s, n, "…")
	if pad := n - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func colorFor(grade string) string {
	switch grade {
	case rating.GradeLow:
		return colorRed
	case rating.GradeFair:
		return colorYellow
	case rating.GradeHigh:
		return colorGreen
	default:
		return colorReset
	}
}
