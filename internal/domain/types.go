package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c CellCoord) String() string { return fmt.Sprintf("%d,%d", c.Row, c.Col) }

// ParseCoord reads "row,col".
func ParseCoord(s string) (CellCoord, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return CellCoord{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return CellCoord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return CellCoord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return CellCoord{Row: r, Col: c}, nil
}

// Grid is a rows x cols table of placement counts.
type Grid [][]int

func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	return g
}

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = append([]int(nil), g[r]...)
	}
	return out
}

// Max returns the largest value, or 0 for an empty grid.
func (g Grid) Max() int {
	m := 0
	for _, row := range g {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}
	return m
}

func (g Grid) Sum() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			n += v
		}
	}
	return n
}

// Snapshot is a detached copy of one session's state for presentation.
type Snapshot struct {
	ID        string          `json:"id,omitempty"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	Board     [][]Observation `json:"board"`
	Ships     []ShipType      `json:"ships"`
	Aggregate Grid            `json:"aggregate"`
	PerShip   map[string]Grid `json:"perShip,omitempty"`
	Targets   []CellCoord     `json:"targets,omitempty"`
}
