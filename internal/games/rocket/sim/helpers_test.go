package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/config"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// newTestSession builds a session with default config, applying mutators first.
func newTestSession(t *testing.T, src Source, mutators ...func(*config.RocketConfig)) *Session {
	t.Helper()

	cfg := config.DefaultRocketConfig()
	for _, m := range mutators {
		m(&cfg)
	}

	s, err := NewSession(cfg, src)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// quietSource never passes the spawn roll and always spawns on the right,
// where obstacles drift away from the rocket.
func quietSource() Source {
	return NewSequenceSource(0.99)
}

// checkObstacleBounds verifies an obstacle respects its construction bounds.
func checkObstacleBounds(t *testing.T, o Obstacle, cfg config.RocketObstacles, z float64) {
	t.Helper()

	if o.Pos.X != cfg.LeftX && o.Pos.X != cfg.RightX {
		t.Errorf("obstacle X = %g, expected %g or %g", o.Pos.X, cfg.LeftX, cfg.RightX)
	}
	if o.Pos.Y < cfg.MinHeight || o.Pos.Y > cfg.MaxHeight {
		t.Errorf("obstacle Y = %g outside [%g, %g]", o.Pos.Y, cfg.MinHeight, cfg.MaxHeight)
	}
	if o.Pos.Z != z {
		t.Errorf("obstacle Z = %g, expected lane depth %g", o.Pos.Z, z)
	}
	if o.Radius < cfg.MinRadius || o.Radius > cfg.MaxRadius || o.Radius <= 0 {
		t.Errorf("obstacle radius = %g outside [%g, %g]", o.Radius, cfg.MinRadius, cfg.MaxRadius)
	}
	if o.RotationSpeed < 0 || o.RotationSpeed > cfg.MaxRotationSpeed {
		t.Errorf("rotation speed = %g outside [0, %g]", o.RotationSpeed, cfg.MaxRotationSpeed)
	}
	if o.Speed < 0 || o.Speed > cfg.MaxSpeed {
		t.Errorf("speed = %g outside [0, %g]", o.Speed, cfg.MaxSpeed)
	}
}
