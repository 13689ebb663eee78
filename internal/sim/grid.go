// Package sim implements the day/night duel simulation: a two-state cell
// grid crossed by diagonal-moving entities that flip cells on collision.
// The package is UI-agnostic and, given a seed, fully deterministic.
package sim

import (
	"errors"
	"fmt"
)

// CellState is the state of a single grid cell.
type CellState uint8

const (
	Day   CellState = 0
	Night CellState = 1
)

// String returns the display name of the state.
func (s CellState) String() string {
	if s == Night {
		return "night"
	}
	return "day"
}

// Opposite returns the other cell state.
func (s CellState) Opposite() CellState {
	return 1 - s
}

// ErrOutOfBounds is returned when a cell coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("sim: coordinate out of bounds")

// Grid represents the board as a rectangular grid of two-state cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	cells []CellState
}

// NewGrid creates a grid with the initial split: the left half is Day
// and the right half Night. For odd widths the middle column stays Day.
// Width and height must be positive.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		cells: make([]CellState, w*h),
	}
	g.initSplit()
	return g
}

// initSplit paints the starting halves. Night occupies columns x >= (W+1)/2.
func (g *Grid) initSplit() {
	nightStart := (g.W + 1) / 2
	for y := 0; y < g.H; y++ {
		row := y * g.W
		for x := 0; x < nightStart; x++ {
			g.cells[row+x] = Day
		}
		for x := nightStart; x < g.W; x++ {
			g.cells[row+x] = Night
		}
	}
}

// InBounds returns true if (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// at returns the cell state without a bounds check. Callers validate first.
func (g *Grid) at(x, y int) CellState {
	return g.cells[y*g.W+x]
}

// State returns the state of the cell at (x, y).
func (g *Grid) State(x, y int) (CellState, error) {
	if !g.InBounds(x, y) {
		return Day, fmt.Errorf("state of (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	return g.at(x, y), nil
}

// Toggle flips the cell at (x, y) between Day and Night.
func (g *Grid) Toggle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("toggle of (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	g.toggle(x, y)
	return nil
}

// toggle flips a cell without a bounds check. Callers validate first.
func (g *Grid) toggle(x, y int) {
	i := y*g.W + x
	g.cells[i] = 1 - g.cells[i]
}

// Reset sets every cell to Day.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Day
	}
}

// CountStates returns the number of Day and Night cells. The two always
// sum to W*H.
func (g *Grid) CountStates() (day, night int) {
	for _, c := range g.cells {
		night += int(c)
	}
	return len(g.cells) - night, night
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Cells returns a copy of the cell matrix in row-major order.
func (g *Grid) Cells() []CellState {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return cells
}
