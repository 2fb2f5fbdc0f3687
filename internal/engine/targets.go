package engine

import (
	"sort"

	"svw.info/battleship/internal/domain"
)

// Targets returns up to n Unknown cells with the highest aggregate count,
// highest first, ties broken by row then column. Zero-count cells are skipped.
func (e *Engine) Targets(n int) []domain.CellCoord {
	if n <= 0 {
		return nil
	}
	type cand struct {
		at    domain.CellCoord
		count int
	}
	var cands []cand
	for r := 0; r < e.board.Rows(); r++ {
		for c := 0; c < e.board.Cols(); c++ {
			if e.board.At(r, c) != domain.Unknown || e.aggregate[r][c] == 0 {
				continue
			}
			cands = append(cands, cand{domain.CellCoord{Row: r, Col: c}, e.aggregate[r][c]})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].count > cands[j].count })
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]domain.CellCoord, len(cands))
	for i, c := range cands {
		out[i] = c.at
	}
	return out
}
