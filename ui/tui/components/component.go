package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget the table view embeds next to the table. It is a
// plain tea.Model that its parent can also resize.
type Component interface {
	tea.Model
	Resize(w, h int)
}

var _ Component = (*QualityWidget)(nil)
