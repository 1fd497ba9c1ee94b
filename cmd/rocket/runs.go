package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [mode]",
	Short: "Show recently finished runs",
	Long: `List the most recent runs, newest first, with the seed each one used.
Replay a run's obstacle stream with 'rocket play <mode> --seed <seed>'.

Examples:
  rocket runs
  rocket runs rocket_despawn --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum runs to show")
}

func runRuns(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			exitUnknownGame(gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-10s  %6s  %7s  %7s  %s\n",
		"Date", "Mode", "Player", "Score", "Time", "Speed", "Seed")
	fmt.Printf("  %-16s  %-14s  %-10s  %6s  %7s  %7s  %s\n",
		"----", "----", "------", "-----", "----", "-----", "----")
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-16s  %-14s  %-10s  %6d  %7.1f  %7.4f  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, player,
			r.Score, r.Elapsed, r.Difficulty, r.Seed)
	}
}

// runScoreboard opens the interactive scoreboard on gameID, or on the
// first mode when it is empty.
func runScoreboard(gameID string) {
	store := openStoreOrWarn()
	cfg := terminalConfig()
	runErr := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", runErr)
		os.Exit(1)
	}
}
