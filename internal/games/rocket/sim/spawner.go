package sim

import (
	"math"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Spawner introduces new obstacles at the lane edges.
type Spawner struct {
	cfg config.RocketObstacles
	src Source
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(cfg config.RocketObstacles, src Source) *Spawner {
	return &Spawner{cfg: cfg, src: src}
}

// MaybeSpawn rolls the per-tick spawn chance and, on success, appends one
// obstacle at lane depth z. Reports whether an obstacle was added.
func (sp *Spawner) MaybeSpawn(obstacles []Obstacle, z float64) ([]Obstacle, bool) {
	if sp.src.Float64() >= sp.cfg.SpawnChance {
		return obstacles, false
	}
	return append(obstacles, sp.Spawn(z)), true
}

// Spawn constructs one obstacle unconditionally.
//
// Draw order: side, height, radius, rotation speed, forward speed.
// Every band is half-open, so values stay inside the configured bounds
// without clamping.
func (sp *Spawner) Spawn(z float64) Obstacle {
	x := sp.cfg.RightX
	if sp.src.Float64() < 0.5 {
		x = sp.cfg.LeftX
	}

	y := core.Lerp(sp.cfg.MinHeight, sp.cfg.MaxHeight, sp.src.Float64())
	radius := core.Lerp(sp.cfg.MinRadius, sp.cfg.MaxRadius, sp.src.Float64())

	return Obstacle{
		Body: Body{
			Pos:    core.V3(x, y, z),
			Radius: radius,
		},
		RotationSpeed: sp.src.Float64() * sp.cfg.MaxRotationSpeed,
		Speed:         math.Floor(sp.src.Float64() * sp.cfg.MaxSpeed),
	}
}
