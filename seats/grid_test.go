package seats

import (
	"errors"
	"testing"
)

func newTestGrid(t *testing.T, rows, cols int, booked ...Coord) *Grid {
	t.Helper()
	grid, err := NewGrid(Layout{Rows: rows, Cols: cols}, booked)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return grid
}

func TestNewGrid_RejectsInvalidLayout(t *testing.T) {
	if _, err := NewGrid(Layout{Rows: 0, Cols: 5}, nil); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if _, err := NewGrid(Layout{Rows: 5, Cols: -1}, nil); err == nil {
		t.Fatal("expected error for negative cols")
	}
}

func TestNewGrid_DropsBookedSeatsOutsideLayout(t *testing.T) {
	grid := newTestGrid(t, 2, 2, Coord{Row: 1, Col: 1}, Coord{Row: 9, Col: 9})
	if !grid.IsBooked(Coord{Row: 1, Col: 1}) {
		t.Fatal("expected seat R1C1 booked")
	}
	if grid.IsBooked(Coord{Row: 9, Col: 9}) {
		t.Fatal("expected out-of-layout seat to be dropped")
	}
}

func TestToggle_SelectsAndDeselects(t *testing.T) {
	grid := newTestGrid(t, 5, 5)
	seat := Coord{Row: 2, Col: 3}

	if err := grid.Toggle(seat); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !grid.IsSelected(seat) {
		t.Fatal("expected seat selected")
	}
	if err := grid.Toggle(seat); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if grid.IsSelected(seat) {
		t.Fatal("expected seat deselected")
	}
	if grid.SelectedCount() != 0 {
		t.Fatalf("expected empty selection, got %d", grid.SelectedCount())
	}
}

func TestToggle_OutOfRangeFails(t *testing.T) {
	grid := newTestGrid(t, 3, 3)

	err := grid.Toggle(Coord{Row: 4, Col: 1})
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got %v", err)
	}
	if rangeErr.Coord != (Coord{Row: 4, Col: 1}) {
		t.Fatalf("unexpected coordinate: %+v", rangeErr.Coord)
	}
	if grid.SelectedCount() != 0 {
		t.Fatal("expected selection untouched")
	}

	for _, coord := range []Coord{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 1, Col: 4},
		{Row: -1, Col: -1},
	} {
		if err := grid.Toggle(coord); err == nil {
			t.Fatalf("expected error for %s", coord)
		}
	}
}

func TestToggle_BookedSeatIsSilentNoOp(t *testing.T) {
	booked := Coord{Row: 1, Col: 1}
	grid := newTestGrid(t, 3, 3, booked)

	if err := grid.Toggle(booked); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if grid.IsSelected(booked) {
		t.Fatal("booked seat must never become selected")
	}
	if grid.SelectedCount() != 0 {
		t.Fatal("expected selection untouched")
	}
}

func TestToggle_SelectionLimit(t *testing.T) {
	grid := newTestGrid(t, 4, 4)

	var chosen []Coord
	for row := 1; row <= 4 && len(chosen) < MaxSelection; row++ {
		for col := 1; col <= 4 && len(chosen) < MaxSelection; col++ {
			coord := Coord{Row: row, Col: col}
			if err := grid.Toggle(coord); err != nil {
				t.Fatalf("expected nil error at %s, got %v", coord, err)
			}
			chosen = append(chosen, coord)
		}
	}
	if grid.SelectedCount() != MaxSelection {
		t.Fatalf("expected %d selected, got %d", MaxSelection, grid.SelectedCount())
	}

	extra := Coord{Row: 4, Col: 4}
	if err := grid.Toggle(extra); !errors.Is(err, ErrSelectionLimit) {
		t.Fatalf("expected ErrSelectionLimit, got %v", err)
	}
	if grid.SelectedCount() != MaxSelection {
		t.Fatal("expected selection untouched after limit error")
	}
	for _, coord := range chosen {
		if !grid.IsSelected(coord) {
			t.Fatalf("expected %s still selected", coord)
		}
	}

	// Deselection is allowed at the limit.
	if err := grid.Toggle(chosen[0]); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := grid.Toggle(extra); err != nil {
		t.Fatalf("expected nil error after making room, got %v", err)
	}
}

func TestSelected_PreservesToggleOrder(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	order := []Coord{{Row: 2, Col: 2}, {Row: 1, Col: 1}, {Row: 3, Col: 3}}
	for _, coord := range order {
		if err := grid.Toggle(coord); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	selected := grid.Selected()
	if len(selected) != len(order) {
		t.Fatalf("expected %d seats, got %d", len(order), len(selected))
	}
	for i := range order {
		if selected[i] != order[i] {
			t.Fatalf("unexpected order: %v", selected)
		}
	}
}

func TestTotalPrice(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	if got := grid.TotalPrice(12.5); got != 0 {
		t.Fatalf("expected zero total, got %v", got)
	}
	_ = grid.Toggle(Coord{Row: 1, Col: 1})
	_ = grid.Toggle(Coord{Row: 1, Col: 2})
	if got := grid.TotalPrice(12.5); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestClear(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	_ = grid.Toggle(Coord{Row: 1, Col: 1})
	grid.Clear()
	if grid.SelectedCount() != 0 {
		t.Fatal("expected empty selection after clear")
	}
}
