package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration for a mode (rocket by default).

Save it as ~/.arcade/configs/rocket.yaml or ./configs/rocket.yaml and edit
the keys you want to change, or pass it with --config.

Examples:
  rocket config > ~/.arcade/configs/rocket.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := "rocket"
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		exitUnknownGame(gameID)
	}
	fmt.Print(strings.TrimRight(string(data), "\n") + "\n")
}
