package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the hard-coded configuration. It matches the embedded
// defaults file.
func Default() Config {
	return Config{
		TickRate:     60,
		FallInterval: 150 * time.Millisecond,
		Highscore: HighscoreConfig{
			Backend: BackendFile,
			Path:    "~/.tetris/highscore.txt",
		},
		Scores: ScoresConfig{
			DB:      "~/.tetris/scores.db",
			History: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
