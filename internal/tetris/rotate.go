package tetris

// kickOffsets are the horizontal anchor shifts tried, in order, after a
// rotation: in place, one cell left, one cell right.
var kickOffsets = [...]int{0, -1, 1}

// TryRotate turns p clockwise if the rotated shape fits at the current
// anchor or one column to either side, moving the anchor by the kick
// that succeeded. When no position fits, the shape is restored and the
// anchor is left untouched. Reports whether the rotation was committed.
func TryRotate(p *Piece, locked *LockedCells) bool {
	saved := p.Shape
	p.Rotate()

	for _, dx := range kickOffsets {
		if IsValid(p.Shape, p.X+dx, p.Y, locked) {
			p.X += dx
			return true
		}
	}

	p.Shape = saved
	return false
}
