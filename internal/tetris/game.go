// Package tetris implements the falling-block game core: piece movement
// and rotation, collision against the locked cells, row clearing,
// scoring and the fall/lock state machine. It draws into a core.Screen
// and knows nothing about the terminal.
package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	// DefaultFallInterval is the gravity period.
	DefaultFallInterval = 150 * time.Millisecond

	// PointsPerRow is added to the score for every cleared row.
	PointsPerRow = 100
)

// Phase is the position of the game in its spawn/fall/lock cycle.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// HighscoreStore persists the best score between runs.
type HighscoreStore interface {
	LoadHighscore() (int, error)
	SaveHighscore(score int) error
}

// Option configures a Game.
type Option func(*Game)

// WithHighscoreStore sets where the highscore is loaded from and saved to.
func WithHighscoreStore(s HighscoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// WithLogger sets the logger. Without it the game logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithFallInterval overrides the gravity period. Non-positive values are ignored.
func WithFallInterval(d time.Duration) Option {
	return func(g *Game) {
		if d > 0 {
			g.fallInterval = d
		}
	}
}

// Game is a single-player falling-block game.
type Game struct {
	rng    *rand.Rand
	locked *LockedCells

	current *Piece
	next    *Piece

	phase        Phase
	paused       bool
	tooSmall     bool
	fallTimer    time.Duration
	fallInterval time.Duration

	score     int
	highscore int
	newRecord bool
	lines     int
	pieces    int
	tick      uint64

	screenW int
	screenH int

	store HighscoreStore
	log   *log.Logger
}

// New creates a game and loads the persisted highscore. The game is
// playable immediately; Reset reseeds it for a new session.
func New(opts ...Option) *Game {
	g := &Game{
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		locked:       NewLockedCells(BoardWidth, BoardHeight),
		fallInterval: DefaultFallInterval,
		log:          log.New(io.Discard),
		screenW:      core.DefaultConfig().ScreenW,
		screenH:      core.DefaultConfig().ScreenH,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.highscore = g.loadHighscore()
	g.restart()
	return g
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset reseeds the piece generator, adopts the screen size and starts a
// fresh game. The highscore is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.restart()
}

// Resize records the screen size. Play freezes while the screen is too
// small to show the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// restart empties the board and deals two new pieces.
func (g *Game) restart() {
	g.locked.Clear()
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.newRecord = false
	g.paused = false
	g.fallTimer = 0
	g.current = nil
	g.next = g.randomPiece()
	g.spawn()
}

func (g *Game) randomPiece() *Piece {
	return NewPiece(Kinds[g.rng.Intn(len(Kinds))], BoardWidth)
}

// Step processes one frame: every buffered action in order, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var res core.StepResult

	if g.tooSmall {
		res.State = g.State()
		return res
	}

	for _, a := range in.Actions {
		g.handleAction(a, &res)
	}

	if g.phase == PhaseFalling && !g.paused {
		g.fallTimer += in.Elapsed
		if g.fallTimer >= g.fallInterval {
			g.fallTimer = 0
			if !g.move(0, 1) {
				g.lock(&res)
			}
		}
	}

	res.State = g.State()
	return res
}

func (g *Game) handleAction(a core.Action, res *core.StepResult) {
	if g.phase == PhaseGameOver {
		if a == core.ActionRestart {
			g.log.Debug("restart", "previous_score", g.score)
			g.restart()
		}
		return
	}

	if a == core.ActionPause {
		g.paused = !g.paused
		return
	}
	if g.paused {
		return
	}

	switch a {
	case core.ActionMoveLeft:
		g.move(-1, 0)
	case core.ActionMoveRight:
		g.move(1, 0)
	case core.ActionSoftDrop:
		g.move(0, 1)
	case core.ActionRotate:
		TryRotate(g.current, g.locked)
	case core.ActionHardDrop:
		for g.move(0, 1) {
		}
		g.lock(res)
	}
}

// move shifts the active piece, undoing the shift if it does not fit.
func (g *Game) move(dx, dy int) bool {
	g.current.X += dx
	g.current.Y += dy
	if g.current.Fits(g.locked) {
		return true
	}
	g.current.X -= dx
	g.current.Y -= dy
	return false
}

// lock merges the active piece into the locked cells, clears rows,
// scores them and brings in the next piece.
func (g *Game) lock(res *core.StepResult) {
	g.phase = PhaseLocking

	color := g.current.Color()
	for _, c := range g.current.Cells() {
		g.locked.Set(c.X, c.Y, color)
	}
	g.current = nil
	g.pieces++
	res.Locked++

	cleared := ClearRows(g.locked)
	if cleared > 0 {
		g.score += cleared * PointsPerRow
		g.lines += cleared
		res.Cleared += cleared
		g.log.Debug("rows cleared", "rows", cleared, "score", g.score)
	}

	if g.score > g.highscore {
		if !g.newRecord {
			g.log.Info("new record", "score", g.score, "previous", g.highscore)
		}
		g.highscore = g.score
		g.newRecord = true
		g.saveHighscore()
	}

	g.spawn()
}

// spawn promotes the next piece and deals a new one. A piece that does
// not fit at its spawn position ends the game.
func (g *Game) spawn() {
	g.phase = PhaseSpawning
	g.current = g.next
	g.next = g.randomPiece()
	g.fallTimer = 0

	if !g.current.Fits(g.locked) {
		g.phase = PhaseGameOver
		g.log.Info("game over", "score", g.score, "lines", g.lines, "highscore", g.highscore)
		return
	}
	g.phase = PhaseFalling
}

func (g *Game) loadHighscore() int {
	if g.store == nil {
		return 0
	}
	hs, err := g.store.LoadHighscore()
	if err != nil {
		g.log.Debug("highscore unavailable", "error", err)
		return 0
	}
	return max(hs, 0)
}

func (g *Game) saveHighscore() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighscore(g.highscore); err != nil {
		g.log.Debug("highscore not saved", "score", g.highscore, "error", err)
	}
}

// State returns the externally visible status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Highscore: g.highscore,
		Lines:     g.lines,
		NewRecord: g.newRecord,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused,
	}
}

// Grid returns the board projection of the locked cells.
func (g *Game) Grid() Grid {
	return Project(g.locked)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}
