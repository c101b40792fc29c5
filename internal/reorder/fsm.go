// Package reorder implements the column drag gesture as a finite-state
// machine. Every transition is a pure function from one State to the next;
// the caller owns the State and feeds it pointer or keyboard events.
package reorder

import (
	"fmt"

	"prodtable/internal/columns"
)

// Phase is the gesture lifecycle: Idle -> Dragging -> {Dropped | Cancelled} -> Idle.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Dropped
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Drag is the transient payload of an in-progress gesture.
type Drag struct {
	Column columns.ID
	Origin int // index of Column when the gesture began
	X, Y   int // last pointer offset
}

// State is the controller state. Order is replaced wholesale on every
// change and never mutated in place.
type State struct {
	Phase Phase
	Order columns.Order
	Drag  *Drag
}

// New returns an idle controller over order.
func New(order columns.Order) State {
	return State{Phase: Idle, Order: order}
}

// Active reports whether a gesture is in progress.
func (s State) Active() bool {
	return s.Phase == Dragging && s.Drag != nil
}

// CanDrag reports whether id may start a gesture.
func CanDrag(id columns.ID) bool {
	return columns.Known(id) && !columns.IsAnchor(id)
}

// CanDrop reports whether id is a valid drop destination.
func CanDrop(id columns.ID) bool {
	return columns.Known(id) && !columns.IsAnchor(id)
}

// Press begins a gesture on id at pointer (x, y). Pressing an anchor or an
// unknown column, or pressing while another gesture is active, is a no-op.
func Press(s State, id columns.ID, x, y int) State {
	if s.Active() || !CanDrag(id) {
		return s
	}
	origin := s.Order.IndexOf(id)
	if origin < 0 {
		return s
	}
	return State{
		Phase: Dragging,
		Order: s.Order,
		Drag:  &Drag{Column: id, Origin: origin, X: x, Y: y},
	}
}

// Hover moves the dragged column to target's current index. It fires on
// every qualifying hover, so the order follows the pointer live.
func Hover(s State, target columns.ID) State {
	if !s.Active() || target == s.Drag.Column || !CanDrop(target) {
		return s
	}
	to := s.Order.IndexOf(target)
	next, ok := s.Order.Move(s.Drag.Column, to)
	if !ok {
		return s
	}
	return State{Phase: Dragging, Order: next, Drag: s.Drag}
}

// Motion records the pointer offset without touching the order.
func Motion(s State, x, y int) State {
	if !s.Active() {
		return s
	}
	d := *s.Drag
	d.X, d.Y = x, y
	return State{Phase: Dragging, Order: s.Order, Drag: &d}
}

// Drop ends the gesture over target. The order already holds the final
// position from the last hover; an invalid target (an anchor, or "" for
// none) is treated as a cancel.
func Drop(s State, target columns.ID) State {
	if !s.Active() {
		return s
	}
	if !CanDrop(target) {
		return Cancel(s)
	}
	return State{Phase: Dropped, Order: s.Order}
}

// Cancel ends the gesture and puts the dragged column back at its original
// index, discarding any hover-driven moves.
func Cancel(s State) State {
	if !s.Active() {
		return s
	}
	order := s.Order
	if next, ok := s.Order.Move(s.Drag.Column, s.Drag.Origin); ok {
		order = next
	}
	return State{Phase: Cancelled, Order: order}
}

// Settle returns a finished gesture to Idle.
func Settle(s State) State {
	if s.Phase == Dropped || s.Phase == Cancelled {
		return State{Phase: Idle, Order: s.Order}
	}
	return s
}
