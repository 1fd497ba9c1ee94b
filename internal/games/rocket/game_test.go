package rocket

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

// collisionYAML spawns every obstacle on top of the rocket.
const collisionYAML = `
obstacles:
  left_x: -0.05
  right_x: 0.05
  min_height: 1.0
  max_height: 1.0
`

// useConfig points the package at a temporary config file for one test.
func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rocket.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

// isolateConfig keeps user and working-directory configs out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func newGame(t *testing.T) *Game {
	t.Helper()
	isolateConfig(t)
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"rocket", "rocket_despawn"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}

		mode, ok := ModeForID(id)
		if !ok || g.(*Game).mode != mode {
			t.Errorf("ModeForID(%q) = %q, %v", id, mode, ok)
		}
	}

	if info, _ := registry.Info("rocket_despawn"); info.Description == "" {
		t.Error("despawn mode should describe itself")
	}

	if _, ok := ModeForID("flappy"); ok {
		t.Error("unknown ID should have no mode")
	}
}

func TestGameInitialState(t *testing.T) {
	g := newGame(t)

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("unexpected initial state %+v", state)
	}
	if g.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", g.Seed())
	}
	if g.Warning() != "" {
		t.Errorf("unexpected warning %q", g.Warning())
	}
}

func TestGameThrustRaisesRocket(t *testing.T) {
	g := newGame(t)

	g.Step(frameWith(core.ActionThrust, core.ActionThrust))

	snap := g.Snapshot()
	// Two thrusts: velocity 0.04, position 1.04, then gravity
	if y := snap.Rocket.Pos.Y; y < 1.039 || y > 1.041 {
		t.Errorf("Y = %g, expected about 1.04", y)
	}
	if snap.Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", snap.Ticks)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newGame(t)

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused after pause action")
	}

	angle := g.earthAngle
	ticks := g.Snapshot().Ticks
	g.Step(core.NewInputFrame())

	if g.Snapshot().Ticks != ticks {
		t.Error("simulation should not advance while paused")
	}
	if g.earthAngle <= angle {
		t.Error("earth should keep turning while paused")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed after second pause action")
	}
}

func TestGameCollisionEndsGame(t *testing.T) {
	isolateConfig(t)
	useConfig(t, collisionYAML)

	g := New()
	g.Reset(core.DefaultConfig())
	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver || !result.Ended {
		t.Fatalf("expected game over on first step, got %+v", result)
	}

	ticks := g.Snapshot().Ticks
	if again := g.Step(frameWith(core.ActionThrust)); again.Ended {
		t.Error("Ended should only be reported by the step that crashed")
	}
	if g.Snapshot().Ticks != ticks {
		t.Error("finished session should not advance")
	}
}

func TestGameRestartAction(t *testing.T) {
	g := newGame(t)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Step(frameWith(core.ActionRestart))

	if ticks := g.Snapshot().Ticks; ticks != 1 {
		t.Errorf("ticks = %d, expected 1 after restart and one step", ticks)
	}
}

func TestGameBadConfigFallsBack(t *testing.T) {
	isolateConfig(t)
	useConfig(t, "rocket:\n  radius: -1\n")

	g := New()
	g.Reset(core.DefaultConfig())

	if !strings.Contains(g.Warning(), "config ignored") {
		t.Errorf("expected config warning, got %q", g.Warning())
	}
	if g.Snapshot().Rocket.Radius != 0.2 {
		t.Error("fallback session should use default radius")
	}
}

func TestDespawnMode(t *testing.T) {
	isolateConfig(t)

	g := NewDespawn()
	g.Reset(core.DefaultConfig())

	if !g.cfg.Obstacles.Despawn.Enabled {
		t.Error("despawn mode should enable obstacle removal")
	}
	if g.Title() != "Rocket (Despawn)" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestLoadConfigPreset(t *testing.T) {
	isolateConfig(t)
	SetDifficultyPreset("fixed")
	t.Cleanup(func() { SetDifficultyPreset("") })

	cfg, err := LoadConfig(ModeClassic)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}
}
