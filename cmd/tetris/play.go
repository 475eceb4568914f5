package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log-file /tmp/tetris.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)

	logger, logCloser, err := newLogger(cfg.Log)
	if err != nil {
		exitf("%v", err)
	}
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The game still works without the database
	db, err := storage.Open(cfg.Scores.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		db = nil
	}

	opts := []tetris.Option{
		tetris.WithLogger(logger),
		tetris.WithFallInterval(cfg.FallInterval),
	}
	if hs, err := highscoreStore(cfg, db); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: highscore will not be saved: %v\n", err)
	} else {
		opts = append(opts, tetris.WithHighscoreStore(hs))
	}
	game := tetris.New(opts...)

	var recorder tui.ScoreRecorder
	if db != nil && cfg.Scores.History {
		recorder = db
	}

	runErr := tui.Run(game, recorder, logger, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	})

	if db != nil {
		db.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
