package tetris

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type memStore struct {
	hs      int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) LoadHighscore() (int, error) {
	return m.hs, m.loadErr
}

func (m *memStore) SaveHighscore(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.hs = score
	return nil
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(opts...)
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24, TickRate: 60})
	require.Equal(t, PhaseFalling, g.Phase())
	return g
}

// frame builds an input batch with no elapsed time.
func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

func elapsed(d time.Duration) core.InputFrame {
	return core.InputFrame{Elapsed: d}
}

func TestDropOPieceToFloor(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(KindO, BoardWidth)
	require.Equal(t, 4, g.current.X)

	for range BoardHeight {
		g.Step(frame(core.ActionSoftDrop))
	}
	require.Equal(t, BoardHeight-2, g.current.Y, "piece should rest on the floor")
	require.Equal(t, 0, g.locked.Len(), "soft drop never locks")

	res := g.Step(elapsed(DefaultFallInterval))

	assert.Equal(t, 1, res.Locked)
	assert.Equal(t, map[Point]core.Color{
		{4, 18}: core.ColorYellow,
		{5, 18}: core.ColorYellow,
		{4, 19}: core.ColorYellow,
		{5, 19}: core.ColorYellow,
	}, g.locked.Cells())
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, PhaseFalling, g.Phase())
	assert.Equal(t, 0, g.current.Y, "a fresh piece is spawned at the top")
}

func TestGravityAccumulatesElapsedTime(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(KindT, BoardWidth)

	g.Step(elapsed(100 * time.Millisecond))
	assert.Equal(t, 0, g.current.Y)

	g.Step(elapsed(60 * time.Millisecond))
	assert.Equal(t, 1, g.current.Y)
	assert.Equal(t, time.Duration(0), g.fallTimer, "timer resets after a drop")

	g.Step(elapsed(149 * time.Millisecond))
	assert.Equal(t, 1, g.current.Y)
}

func TestWithFallInterval(t *testing.T) {
	g := newTestGame(t, WithFallInterval(time.Second))
	g.current = NewPiece(KindT, BoardWidth)

	g.Step(elapsed(500 * time.Millisecond))
	assert.Equal(t, 0, g.current.Y)
	g.Step(elapsed(500 * time.Millisecond))
	assert.Equal(t, 1, g.current.Y)
}

func TestMovesAreValidated(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(KindO, BoardWidth)

	for range BoardWidth {
		g.Step(frame(core.ActionMoveLeft))
	}
	assert.Equal(t, 0, g.current.X)

	for range BoardWidth {
		g.Step(frame(core.ActionMoveRight))
	}
	assert.Equal(t, BoardWidth-2, g.current.X)

	g.locked.Set(BoardWidth-3, 0, core.ColorGray)
	g.Step(frame(core.ActionMoveLeft))
	assert.Equal(t, BoardWidth-2, g.current.X, "locked cell blocks the move")
}

func TestRotateUsesWallKick(t *testing.T) {
	g := newTestGame(t)
	g.current = &Piece{Kind: KindS, Shape: ShapeOf(KindS).Rotated(), X: BoardWidth - 2, Y: 5}

	g.Step(frame(core.ActionRotate))

	assert.Equal(t, BoardWidth-3, g.current.X)
	assert.True(t, ShapeOf(KindS).Equal(g.current.Shape))
}

func TestHardDropLocksImmediately(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(KindI, BoardWidth)
	nextKind := g.next.Kind

	res := g.Step(frame(core.ActionHardDrop, core.ActionMoveLeft))

	assert.Equal(t, 1, res.Locked)
	for x := 3; x < 7; x++ {
		assert.True(t, g.locked.Has(x, BoardHeight-1), "column %d", x)
	}
	assert.Equal(t, nextKind, g.current.Kind, "next piece is promoted")
	spawn := NewPiece(nextKind, BoardWidth)
	assert.Equal(t, spawn.X-1, g.current.X, "later events in the batch move the new piece")
	assert.Equal(t, 0, res.State.Score, "hard drop scores nothing by itself")
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name      string
		rows      []int
		kind      Kind
		moves     []core.Action
		wantLines int
	}{
		{
			name:      "single",
			rows:      []int{19},
			kind:      KindI,
			moves:     []core.Action{core.ActionMoveLeft, core.ActionMoveLeft, core.ActionMoveLeft},
			wantLines: 1,
		},
		{
			name:      "double",
			rows:      []int{18, 19},
			kind:      KindO,
			wantLines: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.current = NewPiece(tc.kind, BoardWidth)
			for _, y := range tc.rows {
				if tc.kind == KindI {
					fillRow(g.locked, y, 0, 1, 2, 3)
				} else {
					fillRow(g.locked, y, 4, 5)
				}
			}

			g.Step(frame(tc.moves...))
			res := g.Step(frame(core.ActionHardDrop))

			assert.Equal(t, tc.wantLines, res.Cleared)
			assert.Equal(t, tc.wantLines*PointsPerRow, res.State.Score)
			assert.Equal(t, tc.wantLines, res.State.Lines)
			assert.Equal(t, 0, g.locked.Len(), "board should be empty after the clear")
		})
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := newTestGame(t)
	last := 0
	for i := 0; i < 500 && g.Phase() != PhaseGameOver; i++ {
		var res core.StepResult
		switch i % 3 {
		case 0:
			res = g.Step(frame(core.ActionMoveLeft, core.ActionHardDrop))
		case 1:
			res = g.Step(frame(core.ActionRotate, core.ActionMoveRight, core.ActionHardDrop))
		default:
			res = g.Step(elapsed(DefaultFallInterval))
		}
		require.GreaterOrEqual(t, res.State.Score, last)
		require.Zero(t, res.State.Score%PointsPerRow)
		last = res.State.Score
	}
}

func TestHighscoreRecord(t *testing.T) {
	store := &memStore{hs: 50}
	g := newTestGame(t, WithHighscoreStore(store))
	require.Equal(t, 50, g.State().Highscore)

	g.current = NewPiece(KindO, BoardWidth)
	fillRow(g.locked, 19, 4, 5)
	res := g.Step(frame(core.ActionHardDrop))

	assert.Equal(t, 100, res.State.Score)
	assert.Equal(t, 100, res.State.Highscore)
	assert.True(t, res.State.NewRecord)
	assert.Equal(t, []int{100}, store.saves)

	// A lock that scores nothing does not write again.
	g.current = NewPiece(KindO, BoardWidth)
	res = g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, []int{100}, store.saves)
	assert.True(t, res.State.NewRecord, "the flag lasts for the rest of the game")
}

func TestHighscoreNotBeaten(t *testing.T) {
	store := &memStore{hs: 500}
	g := newTestGame(t, WithHighscoreStore(store))

	g.current = NewPiece(KindO, BoardWidth)
	fillRow(g.locked, 19, 4, 5)
	res := g.Step(frame(core.ActionHardDrop))

	assert.Equal(t, 100, res.State.Score)
	assert.Equal(t, 500, res.State.Highscore)
	assert.False(t, res.State.NewRecord)
	assert.Empty(t, store.saves)
}

func TestHighscoreStoreFailuresAreSwallowed(t *testing.T) {
	store := &memStore{hs: 900, loadErr: errors.New("corrupt"), saveErr: errors.New("read-only")}
	g := newTestGame(t, WithHighscoreStore(store))
	assert.Equal(t, 0, g.State().Highscore, "unreadable highscore counts as none")

	g.current = NewPiece(KindO, BoardWidth)
	fillRow(g.locked, 19, 4, 5)
	res := g.Step(frame(core.ActionHardDrop))

	assert.Equal(t, 100, res.State.Highscore, "in-memory highscore still advances")
	assert.Equal(t, []int{100}, store.saves)
}

// blockSpawn fills the spawn area so the next piece cannot enter.
func blockSpawn(l *LockedCells) {
	for y := 0; y < 2; y++ {
		for x := 3; x < 7; x++ {
			l.Set(x, y, core.ColorGray)
		}
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	g := newTestGame(t)
	blockSpawn(g.locked)
	g.current = &Piece{Kind: KindO, Shape: ShapeOf(KindO), X: 0, Y: 0}

	res := g.Step(frame(core.ActionHardDrop))

	require.True(t, res.State.GameOver)
	assert.Equal(t, PhaseGameOver, g.Phase())
	before := g.locked.Cells()
	assert.Len(t, before, 8+4)

	// Nothing but restart is accepted.
	g.Step(frame(core.ActionMoveLeft, core.ActionRotate, core.ActionHardDrop, core.ActionPause))
	g.Step(elapsed(time.Second))
	assert.Equal(t, before, g.locked.Cells())
	assert.False(t, g.State().Paused)
	assert.True(t, g.State().GameOver)
}

func TestRestartResetsEverythingButHighscore(t *testing.T) {
	store := &memStore{}
	g := newTestGame(t, WithHighscoreStore(store))

	g.current = NewPiece(KindO, BoardWidth)
	fillRow(g.locked, 19, 4, 5)
	g.Step(frame(core.ActionHardDrop))
	require.Equal(t, 100, g.State().Score)

	blockSpawn(g.locked)
	g.current = &Piece{Kind: KindO, Shape: ShapeOf(KindO), X: 0, Y: 0}
	g.Step(frame(core.ActionHardDrop))
	require.True(t, g.State().GameOver)

	res := g.Step(frame(core.ActionRestart))

	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 0, res.State.Lines)
	assert.False(t, res.State.NewRecord)
	assert.Equal(t, 100, res.State.Highscore)
	assert.Equal(t, 0, g.locked.Len())
	assert.Equal(t, PhaseFalling, g.Phase())
	assert.Equal(t, []int{100}, store.saves)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.locked.Set(0, 19, core.ColorGray)

	g.Step(frame(core.ActionRestart))

	assert.Equal(t, 1, g.locked.Len())
}

func TestPauseFreezesPlay(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(KindT, BoardWidth)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)

	g.Step(core.InputFrame{
		Actions: []core.Action{core.ActionMoveLeft, core.ActionRotate, core.ActionHardDrop},
		Elapsed: time.Second,
	})
	assert.Equal(t, 4, g.current.X)
	assert.Equal(t, 0, g.current.Y)
	assert.Equal(t, 0, g.locked.Len())
	assert.Equal(t, time.Duration(0), g.fallTimer, "no time accrues while paused")

	res = g.Step(frame(core.ActionPause))
	require.False(t, res.State.Paused)

	g.Step(elapsed(DefaultFallInterval))
	assert.Equal(t, 1, g.current.Y)
}

func TestTooSmallScreenFreezesPlay(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(KindT, BoardWidth)

	g.Resize(20, 10)
	g.Step(core.InputFrame{Actions: []core.Action{core.ActionMoveLeft}, Elapsed: time.Second})
	assert.Equal(t, 4, g.current.X)
	assert.Equal(t, 0, g.current.Y)

	g.Resize(80, 24)
	g.Step(frame(core.ActionMoveLeft))
	assert.Equal(t, 3, g.current.X)
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	inputs := []core.InputFrame{
		frame(core.ActionMoveLeft, core.ActionHardDrop),
		frame(core.ActionRotate),
		elapsed(DefaultFallInterval),
		frame(core.ActionMoveRight, core.ActionMoveRight, core.ActionHardDrop),
	}
	for i := 0; i < 200; i++ {
		in := inputs[i%len(inputs)]
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, g1.locked.Cells(), g2.locked.Cells())
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	g.current = NewPiece(KindL, BoardWidth)
	g.Step(frame(core.ActionSoftDrop))

	s := g.Snapshot()
	assert.Equal(t, uint64(1), s.Tick)
	assert.Equal(t, PhaseFalling, s.Phase)
	assert.Equal(t, KindL, s.Current)
	assert.Equal(t, 4, s.CurrentX)
	assert.Equal(t, 1, s.CurrentY)
	assert.Equal(t, "falling", s.Phase.String())
}
