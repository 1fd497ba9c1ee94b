package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/config"
)

func TestSpawnFromLeft(t *testing.T) {
	cfg := config.DefaultRocketConfig().Obstacles
	sp := NewSpawner(cfg, NewSequenceSource(0.1, 0.5, 0.5, 0.5, 0.5))

	o := sp.Spawn(0)

	if o.Pos.X != cfg.LeftX {
		t.Errorf("left spawn X = %g, expected %g", o.Pos.X, cfg.LeftX)
	}
	if o.Pos.X >= 0 {
		t.Error("left spawn should have negative lateral origin")
	}
	if !approx(o.Pos.Y, 2.45) {
		t.Errorf("Y = %g, expected midpoint of height band 2.45", o.Pos.Y)
	}
	if !approx(o.Radius, 0.32) {
		t.Errorf("radius = %g, expected 0.32", o.Radius)
	}
	if !approx(o.RotationSpeed, 0.5) || o.Speed != 2 {
		t.Errorf("rotation/speed = %g/%g, expected 0.5/2", o.RotationSpeed, o.Speed)
	}
}

func TestSpawnFromRight(t *testing.T) {
	cfg := config.DefaultRocketConfig().Obstacles
	sp := NewSpawner(cfg, NewSequenceSource(0.9, 0, 0, 0, 0))

	o := sp.Spawn(1.5)

	if o.Pos.X != cfg.RightX {
		t.Errorf("right spawn X = %g, expected %g", o.Pos.X, cfg.RightX)
	}
	if o.Pos.X <= 0 {
		t.Error("right spawn should have positive lateral origin")
	}
	if o.Pos.Z != 1.5 {
		t.Errorf("Z = %g, expected rocket depth 1.5", o.Pos.Z)
	}
	if o.Pos.Y != cfg.MinHeight || o.Radius != cfg.MinRadius {
		t.Errorf("zero draws should produce band minimums, got Y=%g r=%g", o.Pos.Y, o.Radius)
	}
}

func TestSpawnSeededCoversBothSides(t *testing.T) {
	cfg := config.DefaultRocketConfig().Obstacles
	sp := NewSpawner(cfg, NewSource(1))

	left, right := 0, 0
	for i := 0; i < 200; i++ {
		o := sp.Spawn(0)
		checkObstacleBounds(t, o, cfg, 0)
		switch o.Pos.X {
		case cfg.LeftX:
			left++
		case cfg.RightX:
			right++
		}
	}

	if left == 0 || right == 0 {
		t.Errorf("seeded source should exercise both sides, got left=%d right=%d", left, right)
	}
}

func TestSpawnDeterministicForSeed(t *testing.T) {
	cfg := config.DefaultRocketConfig().Obstacles
	a := NewSpawner(cfg, NewSource(42))
	b := NewSpawner(cfg, NewSource(42))

	for i := 0; i < 20; i++ {
		if oa, ob := a.Spawn(0), b.Spawn(0); oa != ob {
			t.Fatalf("spawn %d differs for same seed: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestMaybeSpawnThreshold(t *testing.T) {
	cfg := config.DefaultRocketConfig().Obstacles

	tests := []struct {
		name   string
		chance float64
		roll   float64
		want   bool
	}{
		{"roll below chance", 0.03, 0.02, true},
		{"roll at chance", 0.03, 0.03, false},
		{"roll above chance", 0.03, 0.5, false},
		{"zero chance never spawns", 0, 0, false},
		{"full chance always spawns", 1, 0.99, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			c.SpawnChance = tc.chance
			sp := NewSpawner(c, NewSequenceSource(tc.roll, 0.2, 0.2, 0.2, 0.2, 0.2))

			existing := []Obstacle{{Body: Body{Radius: 0.3}}}
			out, added := sp.MaybeSpawn(existing, 0)

			if added != tc.want {
				t.Errorf("MaybeSpawn() added = %v, expected %v", added, tc.want)
			}
			wantLen := 1
			if tc.want {
				wantLen = 2
			}
			if len(out) != wantLen {
				t.Errorf("collection length = %d, expected %d", len(out), wantLen)
			}
		})
	}
}

func TestSpawnSpeedIsWhole(t *testing.T) {
	cfg := config.DefaultRocketConfig().Obstacles
	for _, u := range []float64{0, 0.19, 0.2, 0.5, 0.999} {
		sp := NewSpawner(cfg, NewSequenceSource(0.1, 0, 0, 0, u))
		o := sp.Spawn(0)
		want := math.Floor(u * cfg.MaxSpeed)
		if o.Speed != want {
			t.Errorf("u=%g: speed = %g, expected %g", u, o.Speed, want)
		}
		if o.Speed < 0 || o.Speed >= cfg.MaxSpeed {
			t.Errorf("u=%g: speed %g outside [0, %g)", u, o.Speed, cfg.MaxSpeed)
		}
	}
}
