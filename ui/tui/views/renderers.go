package views

import (
	"prodtable/ui/tui/state"
)

func RenderTable(s state.AppState, props ViewProps) string {
	v := TableView{}
	return v.Render(s, props)
}
