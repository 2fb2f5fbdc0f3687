package placement

import "svw.info/battleship/internal/domain"

// Count returns, for every cell, how many horizontal and vertical spans of
// the given length cover it without crossing a Miss. Hit cells do not block.
func Count(b *domain.Board, length int) domain.Grid {
	rows, cols := b.Rows(), b.Cols()
	out := domain.NewGrid(rows, cols)
	if length <= 0 {
		return out
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// horizontal
			if c+length <= cols && clearSpan(b, r, c, 0, 1, length) {
				for i := 0; i < length; i++ {
					out[r][c+i]++
				}
			}
			// vertical
			if r+length <= rows && clearSpan(b, r, c, 1, 0, length) {
				for i := 0; i < length; i++ {
					out[r+i][c]++
				}
			}
		}
	}
	return out
}

func clearSpan(b *domain.Board, r, c, dr, dc, length int) bool {
	for i := 0; i < length; i++ {
		if b.At(r+i*dr, c+i*dc) == domain.Miss {
			return false
		}
	}
	return true
}
