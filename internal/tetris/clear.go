package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// ClearRows removes every full row from locked and collapses the rows
// above it. Rows are examined from the bottom up; after a removal the
// same row index is examined again because the row above has just
// dropped into it. Returns the number of rows removed.
func ClearRows(locked *LockedCells) int {
	cleared := 0
	for y := locked.Height() - 1; y >= 0; {
		if !locked.rowFull(y) {
			y--
			continue
		}
		for x := 0; x < locked.Width(); x++ {
			locked.Delete(x, y)
		}
		shiftDown(locked, y)
		cleared++
	}
	return cleared
}

// shiftDown moves every block above row y down by one.
func shiftDown(locked *LockedCells, y int) {
	type block struct {
		p Point
		c core.Color
	}

	var above []block
	for p, c := range locked.Cells() {
		if p.Y < y {
			above = append(above, block{p: p, c: c})
		}
	}

	// Remove first so moved blocks never overwrite ones not yet moved.
	for _, b := range above {
		locked.Delete(b.p.X, b.p.Y)
	}
	for _, b := range above {
		locked.Set(b.p.X, b.p.Y+1, b.c)
	}
}
