// Package seats models a screen's seat grid: layout bounds, the booked
// snapshot loaded at session start, and the user's current selection.
package seats

import (
	"errors"
	"fmt"
)

// MaxSelection is the most seats one booking may hold.
const MaxSelection = 10

// ErrSelectionLimit is returned when toggling would exceed MaxSelection.
var ErrSelectionLimit = errors.New("seat selection limit reached")

// Coord identifies one seat, 1-indexed in both dimensions.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("R%dC%d", c.Row, c.Col)
}

// Layout is the fixed row/column bounds of a screen.
type Layout struct {
	Rows int
	Cols int
}

// Contains reports whether the coordinate falls inside the layout.
func (l Layout) Contains(c Coord) bool {
	return c.Row >= 1 && c.Row <= l.Rows && c.Col >= 1 && c.Col <= l.Cols
}

// RangeError reports a coordinate outside the screen layout.
type RangeError struct {
	Coord  Coord
	Layout Layout
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("seat %s outside %dx%d layout", e.Coord, e.Layout.Rows, e.Layout.Cols)
}

// Grid is the seat state for one showtime. The booked set is an immutable
// snapshot; the selection is mutated only through Toggle and Clear.
type Grid struct {
	layout    Layout
	booked    map[Coord]bool
	selection []Coord
}

// NewGrid builds a grid from a screen layout and the booked snapshot.
// Booked coordinates outside the layout are dropped rather than rejected;
// the booking service owns that data and the client only renders it.
func NewGrid(layout Layout, booked []Coord) (*Grid, error) {
	if layout.Rows < 1 || layout.Cols < 1 {
		return nil, fmt.Errorf("invalid screen layout %dx%d", layout.Rows, layout.Cols)
	}
	taken := make(map[Coord]bool, len(booked))
	for _, coord := range booked {
		if layout.Contains(coord) {
			taken[coord] = true
		}
	}
	return &Grid{layout: layout, booked: taken}, nil
}

// Layout returns the screen bounds.
func (g *Grid) Layout() Layout {
	return g.layout
}

// IsBooked reports whether the seat appears in the booked snapshot.
func (g *Grid) IsBooked(c Coord) bool {
	return g.booked[c]
}

// IsSelected reports whether the seat is currently selected.
func (g *Grid) IsSelected(c Coord) bool {
	for _, sel := range g.selection {
		if sel == c {
			return true
		}
	}
	return false
}

// Toggle flips the selection state of a seat.
//
// Out-of-range coordinates fail with a RangeError. Booked seats are a
// silent no-op: the view never offers them, so a toggle on one carries no
// meaning. Deselection is always allowed; selection fails with
// ErrSelectionLimit once MaxSelection seats are held. In every failure
// case the selection is left untouched.
func (g *Grid) Toggle(c Coord) error {
	if !g.layout.Contains(c) {
		return &RangeError{Coord: c, Layout: g.layout}
	}
	if g.booked[c] {
		return nil
	}
	for i, sel := range g.selection {
		if sel == c {
			g.selection = append(g.selection[:i], g.selection[i+1:]...)
			return nil
		}
	}
	if len(g.selection) >= MaxSelection {
		return ErrSelectionLimit
	}
	g.selection = append(g.selection, c)
	return nil
}

// Clear empties the selection. Used after a booking is confirmed.
func (g *Grid) Clear() {
	g.selection = nil
}

// Selected returns the selection in the order seats were chosen.
func (g *Grid) Selected() []Coord {
	out := make([]Coord, len(g.selection))
	copy(out, g.selection)
	return out
}

// SelectedCount returns the number of selected seats.
func (g *Grid) SelectedCount() int {
	return len(g.selection)
}

// TotalPrice is the exact selection price. Rounding to two decimals is a
// display concern only.
func (g *Grid) TotalPrice(pricePerSeat float64) float64 {
	return float64(len(g.selection)) * pricePerSeat
}
