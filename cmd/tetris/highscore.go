package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagResetHighscore bool

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show or reset the highscore",
	Args:  cobra.NoArgs,
	Run:   runHighscore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagResetHighscore, "reset", false, "Set the highscore back to 0")
}

func runHighscore(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)

	var db *storage.Store
	if cfg.Highscore.Backend == config.BackendSQLite {
		var err error
		if db, err = storage.Open(cfg.Scores.DB); err != nil {
			exitf("opening scores database: %v", err)
		}
		defer db.Close()
	}

	store, err := highscoreStore(cfg, db)
	if err != nil {
		exitf("%v", err)
	}

	if flagResetHighscore {
		if err := store.SaveHighscore(0); err != nil {
			exitf("%v", err)
		}
		fmt.Println("Highscore reset.")
		return
	}

	hs, err := store.LoadHighscore()
	if err != nil {
		exitf("%v", err)
	}
	fmt.Printf("Highscore: %d\n", hs)
}
