package tetris

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Paused    bool
	Score     int
	Highscore int
	NewRecord bool
	Lines     int
	Pieces    int // Pieces locked this game
	Locked    int // Blocks currently on the board
	Current   Kind
	CurrentX  int
	CurrentY  int
	Next      Kind
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Paused:    g.paused,
		Score:     g.score,
		Highscore: g.highscore,
		NewRecord: g.newRecord,
		Lines:     g.lines,
		Pieces:    g.pieces,
		Locked:    g.locked.Len(),
		Current:   -1,
		Next:      -1,
	}
	if g.current != nil {
		s.Current = g.current.Kind
		s.CurrentX = g.current.X
		s.CurrentY = g.current.Y
	}
	if g.next != nil {
		s.Next = g.next.Kind
	}
	return s
}
