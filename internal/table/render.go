package table

import (
	"strings"

	"prodtable/internal/columns"
	"prodtable/internal/rating"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

const cellPadding = 1

var (
	BrandColor  = lipgloss.Color("#f27b24")
	AnchorColor = lipgloss.Color("#874BFD")
	RuleColor   = lipgloss.Color("#444")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Padding(0, cellPadding)

	anchorHeaderStyle = headerStyle.Background(AnchorColor)

	draggedHeaderStyle = headerStyle.
				Faint(true).
				Background(RuleColor)

	cellStyle = lipgloss.NewStyle().Padding(0, cellPadding)

	focusCellStyle = cellStyle.Reverse(true)

	ruleStyle = lipgloss.NewStyle().Foreground(RuleColor)

	brokenStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("240"))

	footerStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, cellPadding)
)

// GradeColor returns the slider colour for a quality grade.
func GradeColor(grade string) lipgloss.Color {
	switch grade {
	case rating.GradeLow:
		return lipgloss.Color("196")
	case rating.GradeFair:
		return lipgloss.Color("220")
	case rating.GradeHigh:
		return lipgloss.Color("46")
	default:
		return lipgloss.Color("240")
	}
}

// RenderOptions carries the view state that affects styling only.
type RenderOptions struct {
	Columns     Set
	Widths      Widths
	Dragging    columns.ID // header drawn dimmed while its column is dragged
	FocusColumn columns.ID
	FocusRow    int // -1 for none
	ShowFooter  bool
	Zones       bool // wrap headers and quality cells in mouse zones
}

// HeaderZoneID names the mouse zone of a header cell.
func HeaderZoneID(id columns.ID) string {
	return "hdr_" + string(id)
}

// QualityZoneID names the mouse zone of a product's quality slider.
func QualityZoneID(productID string) string {
	return "qty_" + productID
}

// Render styles g for the terminal.
func Render(g Grid, opts RenderOptions) string {
	set := opts.Columns
	if set == nil {
		set = DefaultColumns()
	}
	widths := make([]int, len(g.Header))
	for i, h := range g.Header {
		widths[i] = opts.Widths.Of(set, h.ID)
	}
	sep := ruleStyle.Render("│")

	lines := make([]string, 0, len(g.Rows)+4)

	headers := make([]string, len(g.Header))
	for i, h := range g.Header {
		style := headerStyle
		switch {
		case h.ID == opts.Dragging:
			style = draggedHeaderStyle
		case h.Anchor:
			style = anchorHeaderStyle
		}
		if h.ID == opts.FocusColumn {
			style = style.Underline(true)
		}
		cell := renderCell(style, h.Label, widths[i])
		if opts.Zones {
			cell = zone.Mark(HeaderZoneID(h.ID), cell)
		}
		headers[i] = cell
	}
	lines = append(lines, strings.Join(headers, sep))
	lines = append(lines, rule(widths))

	for r, row := range g.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			style := cellStyle
			if r == opts.FocusRow && c.Column == opts.FocusColumn {
				style = focusCellStyle
			}
			cell := renderCell(style, styledContent(c), widths[i])
			if opts.Zones && c.Kind == KindSlider {
				cell = zone.Mark(QualityZoneID(row.ProductID), cell)
			}
			cells[i] = cell
		}
		lines = append(lines, strings.Join(cells, sep))
	}

	if opts.ShowFooter {
		lines = append(lines, rule(widths))
		footers := make([]string, len(g.Header))
		for i, h := range g.Header {
			footers[i] = renderCell(footerStyle, string(h.ID), widths[i])
		}
		lines = append(lines, strings.Join(footers, sep))
	}

	return strings.Join(lines, "\n")
}

// Width is the total rendered width of a row for the given grid and widths.
func Width(g Grid, set Set, w Widths) int {
	total := 0
	for _, h := range g.Header {
		total += w.Of(set, h.ID)
	}
	if len(g.Header) > 1 {
		total += len(g.Header) - 1
	}
	return total
}

func renderCell(style lipgloss.Style, content string, width int) string {
	inner := max(1, width-2*cellPadding)
	content = ansi.Truncate(content, inner, "…")
	return style.Width(width).MaxWidth(width).Render(content)
}

func styledContent(c Cell) string {
	switch c.Kind {
	case KindSlider:
		color := GradeColor(rating.Grade(c.Value))
		return lipgloss.NewStyle().Foreground(color).Render(Slider(c.Value)) + " " + c.Text
	case KindImage:
		if c.Broken {
			return brokenStyle.Render(BrokenImage)
		}
		return c.Text
	default:
		return c.Text
	}
}

func rule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return ruleStyle.Render(strings.Join(parts, "┼"))
}
