package tetris

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions in cells.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Point is a cell coordinate on the board. Y grows downward.
type Point struct {
	X, Y int
}

// Cell is one board position: either empty or filled with a color.
type Cell struct {
	filled bool
	color  core.Color
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Filled returns a cell filled with the given color.
func Filled(c core.Color) Cell {
	return Cell{filled: true, color: c}
}

// IsFilled reports whether the cell holds a locked block.
func (c Cell) IsFilled() bool {
	return c.filled
}

// Color returns the cell color and whether the cell is filled.
func (c Cell) Color() (core.Color, bool) {
	return c.color, c.filled
}

// LockedCells holds every settled block that has not been cleared yet.
// Cells are keyed by their packed index y*width+x.
type LockedCells struct {
	width  int
	height int
	cells  *intmap.Map[int, core.Color]
}

// NewLockedCells creates an empty set for a width×height board.
func NewLockedCells(width, height int) *LockedCells {
	return &LockedCells{
		width:  width,
		height: height,
		cells:  intmap.New[int, core.Color](width * height),
	}
}

// Width returns the board width the set was created for.
func (l *LockedCells) Width() int {
	return l.width
}

// Height returns the board height the set was created for.
func (l *LockedCells) Height() int {
	return l.height
}

// InBounds reports whether (x, y) lies on the board.
func (l *LockedCells) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

func (l *LockedCells) key(x, y int) int {
	return y*l.width + x
}

// Has reports whether (x, y) holds a locked block.
func (l *LockedCells) Has(x, y int) bool {
	if !l.InBounds(x, y) {
		return false
	}
	_, ok := l.cells.Get(l.key(x, y))
	return ok
}

// Get returns the color locked at (x, y).
func (l *LockedCells) Get(x, y int) (core.Color, bool) {
	if !l.InBounds(x, y) {
		return core.ColorDefault, false
	}
	return l.cells.Get(l.key(x, y))
}

// Set locks a block at (x, y). Out-of-bounds coordinates are ignored.
func (l *LockedCells) Set(x, y int, c core.Color) {
	if !l.InBounds(x, y) {
		return
	}
	l.cells.Put(l.key(x, y), c)
}

// Delete removes the block at (x, y), if any.
func (l *LockedCells) Delete(x, y int) {
	if !l.InBounds(x, y) {
		return
	}
	l.cells.Del(l.key(x, y))
}

// Len returns the number of locked blocks.
func (l *LockedCells) Len() int {
	return l.cells.Len()
}

// Clear removes every locked block.
func (l *LockedCells) Clear() {
	l.cells.Clear()
}

// Cells returns a copy of the set as a coordinate map.
func (l *LockedCells) Cells() map[Point]core.Color {
	out := make(map[Point]core.Color, l.cells.Len())
	l.cells.ForEach(func(k int, c core.Color) bool {
		out[Point{X: k % l.width, Y: k / l.width}] = c
		return true
	})
	return out
}

// rowFull reports whether every column of row y is locked.
func (l *LockedCells) rowFull(y int) bool {
	for x := 0; x < l.width; x++ {
		if !l.Has(x, y) {
			return false
		}
	}
	return true
}

// Grid is the board as seen by the renderer: a row-major projection of
// LockedCells. It is rebuilt from the locked set and never edited.
type Grid struct {
	W, H  int
	cells []Cell
}

// Project builds the grid for the current locked set.
func Project(l *LockedCells) Grid {
	g := Grid{
		W:     l.width,
		H:     l.height,
		cells: make([]Cell, l.width*l.height),
	}
	l.cells.ForEach(func(k int, c core.Color) bool {
		g.cells[k] = Filled(c)
		return true
	})
	return g
}

// At returns the cell at (x, y), or an empty cell out of bounds.
func (g Grid) At(x, y int) Cell {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return Empty()
	}
	return g.cells[y*g.W+x]
}

// IsValid reports whether shape anchored with its top-left corner at
// (x, y) fits on the board: every set cell must be in bounds and not
// already locked.
func IsValid(shape Shape, x, y int, locked *LockedCells) bool {
	for i, row := range shape {
		for j, set := range row {
			if !set {
				continue
			}
			cx, cy := x+j, y+i
			if !locked.InBounds(cx, cy) || locked.Has(cx, cy) {
				return false
			}
		}
	}
	return true
}
