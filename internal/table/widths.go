package table

import (
	"maps"

	"prodtable/internal/columns"
)

const (
	MinWidth = 4
	MaxWidth = 60
)

// Widths holds the rendered width of each column, padding included.
type Widths map[columns.ID]int

// DefaultWidths seeds widths from the column descriptors.
func DefaultWidths(set Set) Widths {
	w := make(Widths, len(set))
	for _, c := range set {
		w[c.ID()] = c.DefaultWidth()
	}
	return w
}

// Of returns the width of id, falling back to the descriptor default.
func (w Widths) Of(set Set, id columns.ID) int {
	if v, ok := w[id]; ok {
		return v
	}
	if c, ok := set.Lookup(id); ok {
		return c.DefaultWidth()
	}
	return MinWidth
}

// Resize returns a copy with id widened by delta, clamped to
// [MinWidth, MaxWidth]. Non-resizable columns are left alone.
func (w Widths) Resize(set Set, id columns.ID, delta int) (Widths, bool) {
	c, ok := set.Lookup(id)
	if !ok || !c.Resizable() {
		return w, false
	}
	cur := w.Of(set, id)
	next := max(MinWidth, min(MaxWidth, cur+delta))
	if next == cur {
		return w, false
	}
	out := maps.Clone(w)
	if out == nil {
		out = make(Widths)
	}
	out[id] = next
	return out, true
}

// Merge overlays configured widths on top of w, clamping each value.
// Widths for non-resizable columns are ignored.
func (w Widths) Merge(set Set, overrides map[columns.ID]int) Widths {
	out := maps.Clone(w)
	if out == nil {
		out = make(Widths)
	}
	for id, v := range overrides {
		c, ok := set.Lookup(id)
		if !ok || !c.Resizable() {
			continue
		}
		out[id] = max(MinWidth, min(MaxWidth, v))
	}
	return out
}
