package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagClearScores bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games",
	Long: `Display the top 10 finished games and the best score.

Examples:
  tetris scores
  tetris scores --interactive
  tetris scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the game history (the highscore is kept)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the full history in a table")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)

	store, err := storage.Open(cfg.Scores.DB)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(); err != nil {
			exitf("%v", err)
		}
		fmt.Println("Score history cleared.")
		return
	}

	highscore := 0
	if hs, err := highscoreStore(cfg, store); err == nil {
		highscore, _ = hs.LoadHighscore()
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, highscore, width, height); err != nil {
			exitf("%v", err)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Lines, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if highscore > 0 {
		fmt.Printf("Highscore: %d\n", highscore)
	}
}
