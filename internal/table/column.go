// Package table turns the product list, the column descriptors and the
// current column order into a header/body grid, and styles that grid for
// the terminal.
package table

import (
	"net/url"
	"strconv"

	"prodtable/internal/catalog"
	"prodtable/internal/columns"
)

// CellKind tells the renderer how to draw a cell.
type CellKind int

const (
	KindText CellKind = iota
	KindNumeric
	KindSlider
	KindImage
)

// Cell is the unstyled content of one grid cell.
type Cell struct {
	Column columns.ID
	Kind   CellKind
	Text   string
	Value  int  // slider position for KindSlider
	Broken bool // image reference could not be used
}

// Column describes how one column is labelled and drawn.
type Column interface {
	ID() columns.ID
	Label() string
	Cell(p catalog.Product) Cell
	Resizable() bool
	DefaultWidth() int
}

type textColumn struct {
	id        columns.ID
	label     string
	width     int
	resizable bool
	kind      CellKind
	get       func(catalog.Product) string
}

func (c textColumn) ID() columns.ID    { return c.id }
func (c textColumn) Label() string     { return c.label }
func (c textColumn) Resizable() bool   { return c.resizable }
func (c textColumn) DefaultWidth() int { return c.width }

func (c textColumn) Cell(p catalog.Product) Cell {
	return Cell{Column: c.id, Kind: c.kind, Text: c.get(p)}
}

// qualityColumn draws the 1-5 range control.
type qualityColumn struct{}

func (qualityColumn) ID() columns.ID    { return columns.Quality }
func (qualityColumn) Label() string     { return "Quality" }
func (qualityColumn) Resizable() bool   { return true }
func (qualityColumn) DefaultWidth() int { return 11 }

func (qualityColumn) Cell(p catalog.Product) Cell {
	return Cell{
		Column: columns.Quality,
		Kind:   KindSlider,
		Text:   strconv.Itoa(p.Quality),
		Value:  p.Quality,
	}
}

type imageColumn struct{}

func (imageColumn) ID() columns.ID    { return columns.ImageURL }
func (imageColumn) Label() string     { return "Image" }
func (imageColumn) Resizable() bool   { return true }
func (imageColumn) DefaultWidth() int { return 24 }

func (imageColumn) Cell(p catalog.Product) Cell {
	c := Cell{Column: columns.ImageURL, Kind: KindImage, Text: p.ImageURL}
	u, err := url.Parse(p.ImageURL)
	if err != nil || p.ImageURL == "" || u.Host == "" {
		c.Broken = true
	}
	return c
}

// Set is an ordered collection of column descriptors.
type Set []Column

// DefaultColumns returns the descriptors for the product table. Name is the
// anchor column and cannot be resized.
func DefaultColumns() Set {
	return Set{
		textColumn{
			id: columns.ProductID, label: "ID", width: 6, resizable: true, kind: KindNumeric,
			get: func(p catalog.Product) string { return p.ID },
		},
		textColumn{
			id: columns.Name, label: "Name", width: 14, resizable: false, kind: KindText,
			get: func(p catalog.Product) string { return p.Name },
		},
		textColumn{
			id: columns.Price, label: "Price", width: 8, resizable: true, kind: KindNumeric,
			get: func(p catalog.Product) string { return p.Price },
		},
		qualityColumn{},
		textColumn{
			id: columns.Description, label: "Description", width: 28, resizable: true, kind: KindText,
			get: func(p catalog.Product) string { return p.Description },
		},
		imageColumn{},
	}
}

// Lookup finds the descriptor for id.
func (s Set) Lookup(id columns.ID) (Column, bool) {
	for _, c := range s {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}
