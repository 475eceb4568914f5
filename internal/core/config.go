package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for a reproducible piece sequence
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score     int
	Highscore int
	Lines     int  // Rows cleared this game
	NewRecord bool // Score beat the highscore loaded at the start of this game
	GameOver  bool
	Paused    bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State   GameState
	Locked  int // Pieces locked during this frame
	Cleared int // Rows cleared during this frame
}
