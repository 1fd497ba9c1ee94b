// Package rocket adapts the rocket-avoidance simulation to the arcade
// platform. The simulation itself lives in the sim subpackage; this package
// maps platform input to session signals and draws the session to a screen.
package rocket

import (
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket/sim"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

// Mode selects how obstacles leave the play area.
type Mode string

const (
	ModeClassic Mode = "classic" // Obstacles accumulate until reset
	ModeDespawn Mode = "despawn" // Obstacles past the despawn bound are removed
)

// Earth backdrop rotation, in degrees per platform step.
const (
	EarthRotationSpeed = 0.1
	EarthRadius        = 20.0 // World units; the surface sits at Y=0
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements registry.Game for the rocket simulation.
type Game struct {
	mode       Mode
	session    *sim.Session
	cfg        config.RocketConfig
	runtime    core.RuntimeConfig
	seed       int64
	earthAngle float64 // Degrees, keeps turning while paused or over
	warning    string  // Config problem shown in the HUD
}

// New creates a rocket game where obstacles accumulate.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewDespawn creates a rocket game that removes obstacles leaving the lane.
func NewDespawn() *Game {
	return &Game{mode: ModeDespawn}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDespawn {
		return "rocket_despawn"
	}
	return "rocket"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDespawn {
		return "Rocket (Despawn)"
	}
	return "Rocket"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeDespawn {
		return "Obstacles are cleared once they fly past the lane"
	}
	return "Every obstacle stays in play until you crash"
}

// ModeForID returns the mode registered under a game ID.
func ModeForID(id string) (Mode, bool) {
	switch id {
	case "rocket":
		return ModeClassic, true
	case "rocket_despawn":
		return ModeDespawn, true
	}
	return "", false
}

// LoadConfig resolves the configuration the game would start with:
// config file, difficulty preset and mode overrides.
func LoadConfig(mode Mode) (config.RocketConfig, error) {
	cfg, err := config.LoadRocket(configPath)
	if err != nil {
		return config.DefaultRocketConfig(), err
	}

	config.ApplyRocketPreset(&cfg, difficultyPreset)
	if mode == ModeDespawn {
		cfg.Obstacles.Despawn.Enabled = true
	}
	return cfg, cfg.Validate()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.earthAngle = 0
	g.warning = ""

	g.seed = runtime.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	cfg, err := LoadConfig(g.mode)
	if err == nil {
		g.session, err = sim.NewSession(cfg, sim.NewSource(g.seed))
	}
	if err != nil {
		// Fall back to defaults so a broken config file never blocks play
		g.warning = "config ignored: " + err.Error()
		cfg = config.DefaultRocketConfig()
		cfg.Obstacles.Despawn.Enabled = g.mode == ModeDespawn
		g.session, _ = sim.NewSession(cfg, sim.NewSource(g.seed))
	}
	g.cfg = cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.earthAngle += EarthRotationSpeed
	if g.earthAngle > 360 {
		g.earthAngle -= 360
	}

	if in.Has(core.ActionRestart) {
		g.session.Signal(sim.SignalReset)
		g.earthAngle = 0
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.session.Signal(sim.SignalTogglePause)
	}

	for i := 0; i < in.Count(core.ActionThrust); i++ {
		g.session.Signal(sim.SignalThrust)
	}
	for i := 0; i < in.Count(core.ActionEase); i++ {
		g.session.Signal(sim.SignalEase)
	}

	wasOver := g.session.GameOver()
	g.session.Tick()

	state := g.State()
	return core.StepResult{State: state, Ended: state.GameOver && !wasOver}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.session.Status() == sim.StatusPaused,
	}
}

// Snapshot returns the session state for run records.
func (g *Game) Snapshot() sim.Snapshot {
	return g.session.Snapshot()
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// Warning returns the config problem that forced defaults, if any.
func (g *Game) Warning() string {
	return g.warning
}

// Register the game modes with the registry
func init() {
	registry.Register("rocket", func() registry.Game {
		return New()
	})
	registry.Register("rocket_despawn", func() registry.Game {
		return NewDespawn()
	})
}
