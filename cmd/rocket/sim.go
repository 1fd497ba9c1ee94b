package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket/sim"
	"github.com/vovakirdan/rocket-arcade/internal/loop"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	flagTicks       int
	flagThrustEvery int
	flagRealtime    bool
	flagDuration    time.Duration
	flagSave        bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run a session without the terminal UI",
	Long: `Drive a rocket session with a scripted pilot and print a summary.

By default the session runs headless as fast as possible for --ticks
ticks, stopping early at game over. With --realtime it runs on a clock
at --fps, logging status changes, until game over, --duration or Ctrl+C.

The pilot thrusts once every --thrust-every ticks (0 never thrusts).
Use --seed to replay the same obstacle stream.

Examples:
  rocket sim --ticks 6000 --thrust-every 45 --seed 7
  rocket sim rocket_despawn --difficulty fixed
  rocket sim --realtime --duration 30s --log-level debug
  rocket sim --thrust-every 40 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to run headless")
	simCmd.Flags().IntVar(&flagThrustEvery, "thrust-every", 0, "Thrust once every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run on a real-time clock at --fps")
	simCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop a real-time run after this long (0 = until game over)")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the finished run in the scores database")
}

func runSim(_ *cobra.Command, args []string) {
	gameID := "rocket"
	if len(args) == 1 {
		gameID = args[0]
	}
	mode, ok := rocket.ModeForID(gameID)
	if !ok {
		exitUnknownGame(gameID)
	}

	logger := newLogger("rocket-sim")

	cfg, err := rocket.LoadConfig(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := sim.NewSession(cfg, sim.NewSource(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("session configured", "mode", mode, "seed", seed,
		"initial_speed", cfg.Difficulty.InitialSpeed, "increment", cfg.Difficulty.EffectiveIncrement())

	var final sim.Snapshot
	if flagRealtime {
		final = runRealtime(session, logger)
	} else {
		res := loop.RunTicks(session, flagTicks, loop.ThrustEvery(flagThrustEvery))
		final = res.Final
	}

	printSummary(gameID, seed, final)

	if flagSave {
		saveSimRun(gameID, seed, final)
	}
}

// runRealtime drives the session on the loop driver until game over,
// --duration or an interrupt.
func runRealtime(session *sim.Session, logger *log.Logger) sim.Snapshot {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	ctx, finish := context.WithCancel(ctx)
	defer finish()

	driver := loop.New(session, flagFPS,
		loop.WithLogger(logger),
		// The scripted pilot sends at most one signal per tick.
		loop.WithQueueSize(4),
		loop.WithOnTick(func(s sim.Snapshot) {
			if s.Status == sim.StatusGameOver {
				finish()
			}
		}),
	)

	if flagThrustEvery > 0 {
		go func() {
			ticker := time.NewTicker(driver.Interval() * time.Duration(flagThrustEvery))
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					driver.Send(sim.SignalThrust)
				}
			}
		}()
	}

	//nolint:errcheck // Run only returns nil on cancellation
	driver.Run(ctx)
	return session.Snapshot()
}

// printSummary writes the outcome of a simulated run to stdout.
func printSummary(gameID string, seed int64, s sim.Snapshot) {
	outcome := "survived"
	if s.Status == sim.StatusGameOver {
		outcome = "crashed"
	}

	fmt.Printf("Simulation - %s (seed %d)\n", gameID, seed)
	fmt.Println()
	fmt.Printf("  %-12s %s\n", "Outcome", outcome)
	fmt.Printf("  %-12s %d\n", "Score", s.Score)
	fmt.Printf("  %-12s %d\n", "Ticks", s.Ticks)
	fmt.Printf("  %-12s %.2f\n", "Time", s.Elapsed)
	fmt.Printf("  %-12s %.4f\n", "Speed", s.Difficulty)
	fmt.Printf("  %-12s %.3f\n", "Altitude", s.Rocket.Pos.Y)
	fmt.Printf("  %-12s %d spawned, %d despawned, %d active\n", "Obstacles", s.Spawned, s.Despawned, len(s.Obstacles))
}

// saveSimRun records the run like a played game.
func saveSimRun(gameID string, seed int64, s sim.Snapshot) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	_, err = store.RecordResult(storage.Run{
		GameID:     gameID,
		Player:     "sim",
		Score:      s.Score,
		Ticks:      s.Ticks,
		Elapsed:    s.Elapsed,
		Difficulty: s.Difficulty,
		Obstacles:  len(s.Obstacles),
		Seed:       seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Println("Run saved.")
}
