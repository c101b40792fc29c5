package table

import (
	"strings"

	"prodtable/internal/catalog"
	"prodtable/internal/columns"
)

const (
	sliderFull  = "●"
	sliderEmpty = "○"

	BrokenImage = "[broken image]"
)

// HeaderCell is one column header.
type HeaderCell struct {
	ID        columns.ID
	Label     string
	Resizable bool
	Anchor    bool
}

// Row is one product laid out in column order.
type Row struct {
	ProductID string
	Cells     []Cell
}

// Grid is the unstyled table: header and body in column order.
type Grid struct {
	Header []HeaderCell
	Rows   []Row
}

// Build lays out ps under order. Identifiers in order without a descriptor
// in set are skipped.
func Build(ps catalog.Products, set Set, order columns.Order) Grid {
	cols := make([]Column, 0, len(order))
	for _, id := range order {
		if c, ok := set.Lookup(id); ok {
			cols = append(cols, c)
		}
	}

	g := Grid{
		Header: make([]HeaderCell, 0, len(cols)),
		Rows:   make([]Row, 0, len(ps)),
	}
	for _, c := range cols {
		g.Header = append(g.Header, HeaderCell{
			ID:        c.ID(),
			Label:     c.Label(),
			Resizable: c.Resizable(),
			Anchor:    columns.IsAnchor(c.ID()),
		})
	}
	for _, p := range ps {
		row := Row{ProductID: p.ID, Cells: make([]Cell, 0, len(cols))}
		for _, c := range cols {
			row.Cells = append(row.Cells, c.Cell(p))
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

// Order returns the column sequence of the grid.
func (g Grid) Order() columns.Order {
	o := make(columns.Order, len(g.Header))
	for i, h := range g.Header {
		o[i] = h.ID
	}
	return o
}

// Slider draws a five step range control for v. Out-of-range values are
// drawn pinned to the nearest end.
func Slider(v int) string {
	filled := max(0, min(catalog.MaxQuality, v))
	return strings.Repeat(sliderFull, filled) + strings.Repeat(sliderEmpty, catalog.MaxQuality-filled)
}

// SliderValueAt maps an x offset inside a quality cell rendered width cells
// wide to the value of the slider step under it. Steps cut off by truncation
// are not clickable.
func SliderValueAt(relX, width int) (int, bool) {
	step := relX - cellPadding
	if step < 0 || step >= sliderSteps(width) {
		return 0, false
	}
	return step + 1, true
}

// sliderSteps is how many slider glyphs survive in a cell of width. A cell
// too narrow for the glyphs, a space and the digit loses its last visible
// cell to the truncation tail.
func sliderSteps(width int) int {
	inner := width - 2*cellPadding
	if inner >= catalog.MaxQuality+2 {
		return catalog.MaxQuality
	}
	return max(0, min(catalog.MaxQuality, inner-1))
}

// Text is the plain-text rendition of a cell.
func Text(c Cell) string {
	switch c.Kind {
	case KindSlider:
		return Slider(c.Value) + " " + c.Text
	case KindImage:
		if c.Broken {
			return BrokenImage
		}
		return c.Text
	default:
		return c.Text
	}
}
