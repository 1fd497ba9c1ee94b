package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/registry"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores and totals for the specified mode.
With --tui, open the interactive scoreboard instead. With --clear, delete
every score and run saved for the mode.

Examples:
  rocket scores rocket
  rocket scores rocket_despawn
  rocket scores --tui
  rocket scores rocket_despawn --tui
  rocket scores rocket --clear`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagScoresTUI {
		gameID := ""
		if len(args) == 1 {
			gameID = args[0]
		}
		runScoreboard(gameID)
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: scores needs a mode, or --tui")
		os.Exit(1)
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		exitUnknownGame(gameID)
	}
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagScoresClear {
		defer store.Close()
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and runs for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rocket play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.1f   Last played: %s\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore,
		stats.LastPlayed.Format("2006-01-02 15:04"))
}
