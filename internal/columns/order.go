package columns

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotPermutation is returned when an order is not a permutation of All.
var ErrNotPermutation = errors.New("column order is not a permutation of the column set")

// Order is the left-to-right display sequence of columns.
type Order []ID

// DefaultOrder returns a fresh copy of the default layout.
func DefaultOrder() Order {
	return slices.Clone(Order(All))
}

// Parse reads a comma separated list such as "id,name,price" and validates it.
func Parse(s string) (Order, error) {
	var o Order
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		o = append(o, ID(part))
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// FromStrings converts raw identifiers (e.g. from YAML) and validates them.
func FromStrings(ids []string) (Order, error) {
	o := make(Order, 0, len(ids))
	for _, id := range ids {
		o = append(o, ID(id))
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks that o contains every column exactly once.
func (o Order) Validate() error {
	if len(o) != len(All) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrNotPermutation, len(o), len(All))
	}
	seen := make(map[ID]bool, len(o))
	for _, id := range o {
		if !Known(id) {
			return fmt.Errorf("%w: unknown column %q", ErrNotPermutation, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate column %q", ErrNotPermutation, id)
		}
		seen[id] = true
	}
	return nil
}

// IndexOf returns the position of id, or -1.
func (o Order) IndexOf(id ID) int {
	return slices.Index(o, id)
}

// Clone returns an independent copy.
func (o Order) Clone() Order {
	return slices.Clone(o)
}

// Equal reports whether both orders list the same columns in the same sequence.
func (o Order) Equal(other Order) bool {
	return slices.Equal(o, other)
}

func (o Order) String() string {
	parts := make([]string, len(o))
	for i, id := range o {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

// Move removes id from its position and reinserts it at index to, returning
// the new order and whether anything changed. The receiver is never modified.
//
// Anchor columns keep their positions: only the movable columns are shuffled
// among the non-anchor slots. Moving an anchor, moving onto an anchor slot,
// an unknown id or an out-of-range index are all no-ops.
func (o Order) Move(id ID, to int) (Order, bool) {
	from := o.IndexOf(id)
	if from < 0 || to < 0 || to >= len(o) || from == to {
		return o, false
	}
	if IsAnchor(id) || IsAnchor(o[to]) {
		return o, false
	}

	slots := make([]int, 0, len(o))
	movable := make([]ID, 0, len(o))
	subFrom, subTo := -1, -1
	for i, c := range o {
		if IsAnchor(c) {
			continue
		}
		if i == from {
			subFrom = len(slots)
		}
		if i == to {
			subTo = len(slots)
		}
		slots = append(slots, i)
		movable = append(movable, c)
	}

	movable = slices.Delete(movable, subFrom, subFrom+1)
	movable = slices.Insert(movable, subTo, id)

	next := o.Clone()
	for k, i := range slots {
		next[i] = movable[k]
	}
	return next, true
}
