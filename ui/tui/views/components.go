package views

import (
	"prodtable/ui/tui/state"
	"prodtable/ui/tui/styles"
)

// StatusLine renders the last edit error, or the last status message.
func StatusLine(s state.AppState) string {
	if s.Err != nil {
		return styles.ErrorStyle.Render("error: " + s.Err.Error())
	}
	if s.Status == "" {
		return " "
	}
	return styles.StatusStyle.Render(s.Status)
}
