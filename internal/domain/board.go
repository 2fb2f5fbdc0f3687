package domain

import "fmt"

// Board holds the player's observations. Its shape is fixed at construction.
type Board struct {
	rows, cols int
	cells      [][]Observation
}

// NewBoard returns a rows x cols board with every cell Unknown.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	cells := make([][]Observation, rows)
	for r := range cells {
		cells[r] = make([]Observation, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

func (b *Board) Set(r, c int, o Observation) error {
	if !b.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, r, c, b.rows, b.cols)
	}
	if o > Miss {
		return fmt.Errorf("%w: %d", ErrInvalidObservation, o)
	}
	b.cells[r][c] = o
	return nil
}

func (b *Board) Get(r, c int) (Observation, error) {
	if !b.InBounds(r, c) {
		return Unknown, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, r, c, b.rows, b.cols)
	}
	return b.cells[r][c], nil
}

// At is Get without the bounds check; callers iterate within Rows/Cols.
func (b *Board) At(r, c int) Observation { return b.cells[r][c] }

// Reset sets every cell back to Unknown.
func (b *Board) Reset() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Unknown
		}
	}
}

// Cells returns a copy of the observation grid.
func (b *Board) Cells() [][]Observation {
	out := make([][]Observation, b.rows)
	for r := range b.cells {
		out[r] = append([]Observation(nil), b.cells[r]...)
	}
	return out
}

func (b *Board) Clone() *Board {
	return &Board{rows: b.rows, cols: b.cols, cells: b.Cells()}
}
