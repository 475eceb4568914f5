package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetromino variants.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	kindCount
)

// Kinds lists every variant in table order.
var Kinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// shapeRows is the spawn orientation of each kind, one string per row.
var shapeRows = [kindCount][]string{
	KindI: {"1111"},
	KindJ: {"100", "111"},
	KindL: {"001", "111"},
	KindO: {"11", "11"},
	KindS: {"011", "110"},
	KindT: {"010", "111"},
	KindZ: {"110", "011"},
}

var kindColors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorYellow,
	KindS: core.ColorGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
}

// String returns the letter of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "?"
	}
	return string("IJLOSTZ"[k])
}

// Color returns the fixed color of the kind.
func (k Kind) Color() core.Color {
	if k < 0 || k >= kindCount {
		return core.ColorDefault
	}
	return kindColors[k]
}

// Shape is a piece matrix, indexed [row][col].
type Shape [][]bool

// ShapeOf returns a fresh copy of the spawn shape of k.
func ShapeOf(k Kind) Shape {
	rows := shapeRows[k]
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j := range row {
			s[i][j] = row[j] == '1'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two shapes have the same cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotated returns s turned 90° clockwise: rows reversed, then transposed,
// so out[i][j] = s[len(s)-1-j][i].
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
		for j := range out[i] {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// Piece is the active falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int // Top-left anchor in board coordinates
}

// NewPiece creates a piece of kind k at its spawn position: centered
// horizontally on a board of the given width, top row at y=0.
func NewPiece(k Kind, boardWidth int) *Piece {
	shape := ShapeOf(k)
	return &Piece{
		Kind:  k,
		Shape: shape,
		X:     boardWidth/2 - shape.Width()/2,
		Y:     0,
	}
}

// Color returns the color of the piece.
func (p *Piece) Color() core.Color {
	return p.Kind.Color()
}

// Rotate turns the shape clockwise in place. The anchor does not move.
func (p *Piece) Rotate() {
	p.Shape = p.Shape.Rotated()
}

// Cells returns the absolute board coordinates of every block.
func (p *Piece) Cells() []Point {
	out := make([]Point, 0, 4)
	for i, row := range p.Shape {
		for j, set := range row {
			if set {
				out = append(out, Point{X: p.X + j, Y: p.Y + i})
			}
		}
	}
	return out
}

// Fits reports whether the piece is valid at its current anchor.
func (p *Piece) Fits(locked *LockedCells) bool {
	return IsValid(p.Shape, p.X, p.Y, locked)
}
