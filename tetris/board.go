package tetris

import (
	"errors"
	"fmt"
)

// Cell is a board cell value. Empty is zero; settled cells hold Kind.Cell().
type Cell uint8

const Empty Cell = 0

// Kind returns the tetromino kind that settled this cell.
func (c Cell) Kind() (Kind, bool) {
	if c == Empty || int(c) > kindCount {
		return 0, false
	}
	return Kind(c - 1), true
}

var ErrInvalidDimensions = errors.New("tetris: board dimensions must be positive")

// Board is the grid of settled cells. Row 0 is the top row.
// The active piece is never written here until it locks.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	b := &Board{width: width, height: height}
	b.Reset()
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Reset empties every cell.
func (b *Board) Reset() {
	b.rows = make([][]Cell, b.height)
	for y := range b.rows {
		b.rows[y] = make([]Cell, b.width)
	}
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Coordinates off the board read as Empty.
func (b *Board) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Empty
	}
	return b.rows[y][x]
}

// Set writes a cell directly. Out of range writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.rows[y][x] = c
}

// IsValidPosition reports whether shape fits with its top-left corner at (x, y).
// Cells above the board (y < 0) are always open; the sides and the floor are not.
func (b *Board) IsValidPosition(shape Shape, x, y int) bool {
	for i := range shape {
		for j, occupied := range shape[i] {
			if !occupied {
				continue
			}

			cx := x + j
			cy := y + i

			if cx < 0 || cx >= b.width || cy >= b.height {
				return false
			}

			if cy >= 0 && b.rows[cy][cx] != Empty {
				return false
			}
		}
	}
	return true
}

// Settle writes the occupied cells of shape into the board. Cells above
// the top row or outside the sides are dropped.
func (b *Board) Settle(shape Shape, x, y int, c Cell) {
	for i := range shape {
		for j, occupied := range shape[i] {
			if occupied {
				b.Set(x+j, y+i, c)
			}
		}
	}
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the indices of full rows, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y := range b.rows {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// ClearFullLines removes every full row, shifts the rows above it down and
// inserts empty rows at the top. Remaining rows keep their relative order.
// Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}

		copy(b.rows[1:y+1], b.rows[:y])
		b.rows[0] = make([]Cell, b.width)
		cleared++
		// row y now holds what was above it; test it again
	}
	return cleared
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{width: b.width, height: b.height, rows: make([][]Cell, b.height)}
	for y := range b.rows {
		out.rows[y] = make([]Cell, b.width)
		copy(out.rows[y], b.rows[y])
	}
	return out
}

// Rows returns a copy of the grid, row 0 first.
func (b *Board) Rows() [][]Cell {
	return b.Clone().rows
}
