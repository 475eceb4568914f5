package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout, in terminal cells. Every board cell is two columns wide so
// blocks look square.
const (
	cellW      = 2
	boardBoxW  = BoardWidth*cellW + 2
	boardBoxH  = BoardHeight + 2
	panelGap   = 2
	panelW     = 16
	nextBoxW   = 4*cellW + 4
	nextBoxH   = 4
	minScreenW = boardBoxW + panelGap + panelW
	minScreenH = boardBoxH
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// Render draws the board, the active piece, the side panel and any
// overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	area := dst.Bounds().Centered(minScreenW, minScreenH)
	board := core.NewRect(area.X, area.Y, boardBoxW, boardBoxH)
	panel := core.NewRect(board.Right()+panelGap, area.Y, panelW, boardBoxH)

	g.renderBoard(dst, board)
	g.renderPanel(dst, panel)

	switch {
	case g.phase == PhaseGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score)}
		if g.newRecord {
			lines = append(lines, "NEW RECORD!")
		}
		lines = append(lines, "R to restart")
		renderOverlay(dst, board, lines...)
	case g.paused:
		renderOverlay(dst, board, "PAUSED", "P to resume")
	}
}

func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	dst.DrawBox(box, core.ColorGray)

	grid := g.Grid()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			sx, sy := box.X+1+x*cellW, box.Y+1+y
			if c, ok := grid.At(x, y).Color(); ok {
				drawBlock(dst, sx, sy, c)
			} else {
				dst.SetColored(sx, sy, emptyRune, core.ColorGray)
			}
		}
	}

	if g.current == nil || g.phase == PhaseGameOver {
		return
	}
	color := g.current.Color()
	for _, p := range g.current.Cells() {
		drawBlock(dst, box.X+1+p.X*cellW, box.Y+1+p.Y, color)
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	x, y := panel.X, panel.Y

	dst.DrawTextColored(x, y, g.Title(), core.ColorBrightYellow)

	next := core.NewRect(x, y+2, nextBoxW, nextBoxH)
	dst.DrawBox(next, core.ColorGray)
	dst.DrawText(x+2, next.Y, " NEXT ")
	if g.next != nil {
		shape := g.next.Shape
		ox := next.X + 1 + (next.W-2-shape.Width()*cellW)/2
		oy := next.Y + 1 + (next.H-2-shape.Height())/2
		for i, row := range shape {
			for j, set := range row {
				if set {
					drawBlock(dst, ox+j*cellW, oy+i, g.next.Color())
				}
			}
		}
	}

	y = next.Bottom() + 1
	stats := []struct {
		label string
		value int
		color core.Color
	}{
		{"SCORE", g.score, core.ColorWhite},
		{"HIGH", g.highscore, core.ColorCyan},
		{"LINES", g.lines, core.ColorWhite},
	}
	for _, s := range stats {
		dst.DrawTextColored(x, y, s.label, core.ColorGray)
		dst.DrawTextColored(x, y+1, fmt.Sprintf("%d", s.value), s.color)
		y += 3
	}

	if g.newRecord {
		dst.DrawTextColored(x, y, "NEW RECORD!", core.ColorBrightRed)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	b := dst.Bounds()
	_, cy := b.Center()
	dst.DrawTextCentered(b, cy-1, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(b, cy+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := 0; i < cellW; i++ {
		dst.SetColored(x+i, y, blockRune, c)
	}
}

// renderOverlay draws a framed message box centered on area.
func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := area.Centered(w+4, len(lines)+2)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box, box.Y+1+i, l, c)
	}
}
