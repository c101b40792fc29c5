package state

import (
	"prodtable/internal/catalog"
	"prodtable/internal/columns"
	"prodtable/internal/reorder"
	"prodtable/internal/table"
)

// AppState holds everything the table view owns. Products and the column
// order inside Reorder are only ever replaced, never edited in place.
type AppState struct {
	Products   catalog.Products
	Reorder    reorder.State
	Widths     table.Widths
	FocusRow   int
	FocusCol   columns.ID
	ShowFooter bool
	Status     string
	Err        error
}

// Order is the current column order.
func (s AppState) Order() columns.Order {
	return s.Reorder.Order
}

// Dragging returns the column being dragged, or "".
func (s AppState) Dragging() columns.ID {
	if s.Reorder.Active() {
		return s.Reorder.Drag.Column
	}
	return ""
}

// FocusedProduct returns the product on the focused row.
func (s AppState) FocusedProduct() (catalog.Product, bool) {
	if s.FocusRow < 0 || s.FocusRow >= len(s.Products) {
		return catalog.Product{}, false
	}
	return s.Products[s.FocusRow], true
}
