package sim

import (
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

func obstacleAt(x float64) Obstacle {
	return Obstacle{Body: Body{Pos: core.V3(x, 2, 0), Radius: 0.3}}
}

func TestMotionAdvance(t *testing.T) {
	m := NewMotion(config.DefaultRocketConfig().Obstacles)

	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		// +2f approach, then 0.5f toward the centre
		{"left side pulled right", -8, -8 + 0.1 + 0.025},
		{"right side pulled left", 8, 8 + 0.1 - 0.025},
		{"centre crosses to positive", 0, 0.1 - 0.025},
		{"just left of centre", -0.05, -0.05 + 0.1 - 0.025},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := []Obstacle{obstacleAt(tc.start)}
			out, removed := m.Advance(obs, 0.05)

			if removed != 0 || len(out) != 1 {
				t.Fatalf("motion should not remove obstacles by default")
			}
			if !approx(out[0].Pos.X, tc.want) {
				t.Errorf("X = %g, expected %g", out[0].Pos.X, tc.want)
			}
			if out[0].Pos.Y != 2 || out[0].Pos.Z != 0 {
				t.Error("motion must only change X")
			}
		})
	}
}

func TestMotionScalesWithFactor(t *testing.T) {
	m := NewMotion(config.DefaultRocketConfig().Obstacles)

	slow, _ := m.Advance([]Obstacle{obstacleAt(-8)}, 0.05)
	fast, _ := m.Advance([]Obstacle{obstacleAt(-8)}, 0.10)

	slowStep := slow[0].Pos.X + 8
	fastStep := fast[0].Pos.X + 8
	if !approx(fastStep, 2*slowStep) {
		t.Errorf("doubling factor should double the step: %g vs %g", slowStep, fastStep)
	}
}

func TestMotionAccumulatesWithoutDespawn(t *testing.T) {
	m := NewMotion(config.DefaultRocketConfig().Obstacles)

	obs := []Obstacle{obstacleAt(8), obstacleAt(-8)}
	for i := 0; i < 5000; i++ {
		obs, _ = m.Advance(obs, 0.05)
	}

	if len(obs) != 2 {
		t.Fatalf("obstacles should never be removed, got %d", len(obs))
	}
	if obs[0].Pos.X < 100 {
		t.Errorf("right-side obstacle should drift far away, X = %g", obs[0].Pos.X)
	}
}

func TestMotionDespawn(t *testing.T) {
	cfg := config.DefaultRocketConfig().Obstacles
	cfg.Despawn.Enabled = true
	cfg.Despawn.Bound = 10
	m := NewMotion(cfg)

	obs := []Obstacle{obstacleAt(9.99), obstacleAt(-8), obstacleAt(20)}
	out, removed := m.Advance(obs, 0.05)

	if removed != 2 {
		t.Errorf("removed = %d, expected 2", removed)
	}
	if len(out) != 1 || out[0].Pos.X >= 0 {
		t.Errorf("only the left obstacle should remain, got %+v", out)
	}
}
