package domain

import (
	"errors"
	"fmt"
)

// MaxSize bounds the edge length of a grid accepted from input.
const MaxSize = 225

var (
	ErrSize     = errors.New("invalid grid size")
	ErrPosition = errors.New("cell position out of range")
	ErrValue    = errors.New("cell value out of range")
)

// Grid is a square puzzle of edge length Size. Cells hold 1..Size for
// placed values and 0 for blanks, stored in row-major order.
type Grid struct {
	size  int
	cells []int
}

// NewGrid returns an all-blank size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrSize, size)
	}
	return &Grid{size: size, cells: make([]int, size*size)}, nil
}

// FromRows builds a grid from row-major values, validating shape and range.
func FromRows(rows [][]int) (*Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrSize, r, len(row), g.size)
		}
		for c, v := range row {
			if err := g.SetChecked(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Size returns the edge length.
func (g *Grid) Size() int { return g.size }

// At returns the value at (row, col). Coordinates must be in range.
func (g *Grid) At(row, col int) int { return g.cells[row*g.size+col] }

// Set stores v at (row, col) without range checks.
func (g *Grid) Set(row, col, v int) { g.cells[row*g.size+col] = v }

// SetChecked stores v at (row, col), rejecting out-of-range positions
// and values outside 0..Size.
func (g *Grid) SetChecked(row, col, v int) error {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return fmt.Errorf("%w: (%d,%d)", ErrPosition, row, col)
	}
	if v < 0 || v > g.size {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrValue, v, row, col)
	}
	g.Set(row, col, v)
	return nil
}

// Rows copies the grid out as row-major slices.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := 0; r < g.size; r++ {
		rows[r] = make([]int, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Filled reports whether every cell holds a value.
func (g *Grid) Filled() bool {
	for _, v := range g.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// EmptyCells counts blank cells.
func (g *Grid) EmptyCells() int {
	n := 0
	for _, v := range g.cells {
		if v == 0 {
			n++
		}
	}
	return n
}
