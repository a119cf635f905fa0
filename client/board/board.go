// Package board holds the client's canonical in-memory grid.
package board

import (
	"fmt"

	"github.com/cbodonnell/connectfour/pkg/game/types"
)

// Board is a rows x cols grid of cells indexed [row][col].
// Row 0 is the top row; pieces accumulate toward the highest row index.
type Board struct {
	rows  int
	cols  int
	cells [][]types.Cell
}

// New allocates a board of Empty cells.
func New(rows, cols int) (*Board, error) {
	b := &Board{}
	if err := b.Initialize(rows, cols); err != nil {
		return nil, err
	}
	return b, nil
}

// Initialize (re)allocates the grid with the given dimensions, all Empty.
func (b *Board) Initialize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", rows, cols)
	}
	cells := make([][]types.Cell, rows)
	for r := range cells {
		cells[r] = make([]types.Cell, cols)
	}
	b.rows, b.cols, b.cells = rows, cols, cells
	return nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) addresses a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// SetCell sets the value of one cell.
func (b *Board) SetCell(row, col int, value types.Cell) error {
	if !b.InBounds(row, col) {
		return &ErrInvalidPosition{Row: row, Col: col}
	}
	b.cells[row][col] = value
	return nil
}

// Cell returns the value of one cell.
func (b *Board) Cell(row, col int) (types.Cell, error) {
	if !b.InBounds(row, col) {
		return types.CellEmpty, &ErrInvalidPosition{Row: row, Col: col}
	}
	return b.cells[row][col], nil
}

// IsColumnFull reports whether the top cell of the column is taken.
func (b *Board) IsColumnFull(col int) (bool, error) {
	c, err := b.Cell(0, col)
	if err != nil {
		return false, err
	}
	return c != types.CellEmpty, nil
}

// ReplaceFromFlat rebuilds the whole grid from a row-major sequence.
func (b *Board) ReplaceFromFlat(flat []types.Cell) error {
	if len(flat) != b.rows*b.cols {
		return &ErrLengthMismatch{Got: len(flat), Want: b.rows * b.cols}
	}
	for r := 0; r < b.rows; r++ {
		copy(b.cells[r], flat[r*b.cols:(r+1)*b.cols])
	}
	return nil
}

// Flat returns a row-major copy of the grid.
func (b *Board) Flat() []types.Cell {
	flat := make([]types.Cell, 0, b.rows*b.cols)
	for _, row := range b.cells {
		flat = append(flat, row...)
	}
	return flat
}

// Equal reports whether both boards have the same dimensions and values.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{rows: b.rows, cols: b.cols, cells: make([][]types.Cell, b.rows)}
	for r, row := range b.cells {
		clone.cells[r] = append([]types.Cell(nil), row...)
	}
	return clone
}
