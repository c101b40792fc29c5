package views

import (
	"prodtable/internal/table"
	"prodtable/ui/tui/state"
	"prodtable/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// TableTop is the screen row of the table header: title line plus a blank.
const TableTop = 2

type TableView struct{}

func (v TableView) Render(s state.AppState, props ViewProps) string {
	title := props.Title
	if title == "" {
		title = "Product Listing"
	}
	header := styles.TitleStyle.Render(title)

	g := table.Build(s.Products, props.Columns, s.Order())
	body := table.Render(g, table.RenderOptions{
		Columns:     props.Columns,
		Widths:      s.Widths,
		Dragging:    s.Dragging(),
		FocusColumn: s.FocusCol,
		FocusRow:    s.FocusRow,
		ShowFooter:  s.ShowFooter,
		Zones:       true,
	})

	var side []string
	if props.ChartView != "" {
		side = append(side, props.ChartView)
	}
	if props.DetailView != "" {
		side = append(side, styles.CardStyle.Render(props.DetailView))
	}
	lower := lipgloss.JoinHorizontal(lipgloss.Top, side...)

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		StatusLine(s),
		lower,
		props.HelpView,
	)

	// Zones are measured before the indicator is drawn on top.
	view = zone.Scan(view)

	if ind := props.Indicator; ind.Visible {
		view = Overlay(view, styles.IndicatorStyle.Render(ind.Label), ind.X, ind.Y)
	}
	return view
}
