// rocket is a terminal rocket-avoidance game: keep the rocket inside the
// corridor above the planet while obstacles sweep in from both sides.
//
// Usage:
//
//	rocket list              - List game modes
//	rocket play <mode>       - Play a mode directly
//	rocket menu              - Pick a mode interactively
//	rocket sim [mode]        - Run a session without a terminal UI
//	rocket serve             - Start SSH server for remote play
//	rocket scores <mode>     - Show high scores for a mode
//	rocket runs [mode]       - Show recently finished runs
//	rocket config [mode]     - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--db <path>           - Set database path (default: ~/.arcade/rocket.db)
//	--config <path>       - Load a custom rocket.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Rocket - dodge obstacles above a spinning planet",
	Long: `Rocket is a terminal arcade game. Thrust to climb, ease off to sink,
and stay clear of the obstacles that fly in from both sides. They get
faster the longer you survive.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker with scoreboard
  sim      - Run a session headless or on a real-time clock
  serve    - Start SSH server for remote play
  scores   - View high scores
  runs     - View recently finished runs

Examples:
  rocket play rocket
  rocket play rocket_despawn --difficulty hard
  rocket sim --ticks 6000 --thrust-every 45 --seed 7
  rocket serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		rocket.SetConfigPath(flagConfig)
		rocket.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/rocket.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rocket config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a stderr logger for one component at the --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStoreOrWarn opens the scores database. A failure is reported and the
// caller continues without persistence.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// currentUsername names local players in saved runs.
func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// exitUnknownGame reports an unregistered game ID and exits.
func exitUnknownGame(gameID string) {
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
	fmt.Fprintln(os.Stderr, "Run 'rocket list' to see available modes.")
	os.Exit(1)
}
