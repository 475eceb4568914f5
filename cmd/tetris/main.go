// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play a game
//	tetris scores            - Show the finished-game history
//	tetris highscore         - Show or reset the highscore
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default from config: 60)
//	--seed <value>      - Set RNG seed for a reproducible piece sequence
//	--db <path>         - Set database path (default: ~/.tetris/scores.db)
//	--config <path>     - Use a specific config file
//	--log-file <path>   - Write logs to a file
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is the classic falling-block puzzle, played in the terminal.

Available commands:
  play       - Play a game (default)
  scores     - View finished games
  highscore  - Show or reset the highscore
  config     - Print the effective configuration

Examples:
  tetris
  tetris play --seed 42
  tetris scores
  tetris highscore --reset`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}

// exitf reports a fatal error on stderr and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSettings reads the config file and applies the flags the user set.
func loadSettings(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Scores.DB = flagDBPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		exitf("%v", err)
	}
	return cfg
}

// newLogger builds the logger. The game owns the terminal, so without a
// log file everything is discarded.
func newLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, f, nil
}

// highscoreStore returns the configured highscore backend. db may be nil
// when the database could not be opened.
func highscoreStore(cfg config.Config, db *storage.Store) (tetris.HighscoreStore, error) {
	switch cfg.Highscore.Backend {
	case config.BackendSQLite:
		if db == nil {
			return nil, fmt.Errorf("highscore backend %q needs the scores database", cfg.Highscore.Backend)
		}
		return db, nil
	default:
		return storage.NewFileStore(cfg.Highscore.Path)
	}
}
