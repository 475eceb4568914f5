package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file and flags are applied.

Config search order:
  --config path
  ~/.tetris/config.yaml
  ./configs/tetris.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data, err := config.Marshal(loadSettings(cmd))
	if err != nil {
		exitf("%v", err)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
}
