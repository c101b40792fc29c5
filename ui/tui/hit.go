package tui

import (
	"prodtable/internal/catalog"
	"prodtable/internal/columns"
	"prodtable/internal/table"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// HitTester resolves a mouse event to the table element under it.
type HitTester interface {
	// HeaderAt returns the column whose header is under the pointer.
	HeaderAt(msg tea.MouseMsg, order columns.Order) (columns.ID, bool)
	// QualityAt returns the product whose quality slider is under the
	// pointer, with the x offset inside the cell.
	QualityAt(msg tea.MouseMsg, products catalog.Products) (productID string, relX int, ok bool)
}

// zoneHitTester reads the zones marked by table.Render.
type zoneHitTester struct{}

func (zoneHitTester) HeaderAt(msg tea.MouseMsg, order columns.Order) (columns.ID, bool) {
	for _, id := range order {
		if zone.Get(table.HeaderZoneID(id)).InBounds(msg) {
			return id, true
		}
	}
	return "", false
}

func (zoneHitTester) QualityAt(msg tea.MouseMsg, products catalog.Products) (string, int, bool) {
	for _, p := range products {
		if x, _ := zone.Get(table.QualityZoneID(p.ID)).Pos(msg); x >= 0 {
			return p.ID, x, true
		}
	}
	return "", 0, false
}
