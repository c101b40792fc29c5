package views

import (
	"prodtable/internal/table"
	"prodtable/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int
	Title         string
	Columns       table.Set

	// Component States
	ChartView  string
	DetailView string
	HelpView   string
	Indicator  Indicator
}

// Indicator is the floating label that follows the pointer during a drag.
type Indicator struct {
	Visible bool
	Label   string
	X, Y    int
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
