package config

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors. Wrapped with field details by Validate.
var (
	ErrNonPositiveRadius = errors.New("radius must be positive")
	ErrInvertedBounds    = errors.New("bounds are inverted")
	ErrOutsideCorridor   = errors.New("rocket starts outside the corridor")
	ErrBadProbability    = errors.New("probability must be within [0, 1]")
	ErrBadSpawnSides     = errors.New("left spawn must be negative and right spawn positive")
	ErrBadDifficulty     = errors.New("difficulty must start positive and grow while enabled")
	ErrNegativeParameter = errors.New("parameter must not be negative")
	ErrNotFinite         = errors.New("value must be a finite number")
)

// floatFields names every float parameter for the finiteness check.
func (c RocketConfig) floatFields() []struct {
	name string
	val  float64
} {
	return []struct {
		name string
		val  float64
	}{
		{"rocket.start_x", c.Rocket.StartX},
		{"rocket.start_y", c.Rocket.StartY},
		{"rocket.start_z", c.Rocket.StartZ},
		{"rocket.radius", c.Rocket.Radius},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.thrust_impulse", c.Physics.ThrustImpulse},
		{"physics.ease_impulse", c.Physics.EaseImpulse},
		{"corridor.min_y", c.Corridor.MinY},
		{"corridor.max_y", c.Corridor.MaxY},
		{"obstacles.spawn_chance", c.Obstacles.SpawnChance},
		{"obstacles.left_x", c.Obstacles.LeftX},
		{"obstacles.right_x", c.Obstacles.RightX},
		{"obstacles.min_height", c.Obstacles.MinHeight},
		{"obstacles.max_height", c.Obstacles.MaxHeight},
		{"obstacles.min_radius", c.Obstacles.MinRadius},
		{"obstacles.max_radius", c.Obstacles.MaxRadius},
		{"obstacles.max_rotation_speed", c.Obstacles.MaxRotationSpeed},
		{"obstacles.max_speed", c.Obstacles.MaxSpeed},
		{"obstacles.approach_factor", c.Obstacles.ApproachFactor},
		{"obstacles.centering_factor", c.Obstacles.CenteringFactor},
		{"obstacles.despawn.bound", c.Obstacles.Despawn.Bound},
		{"difficulty.initial_speed", c.Difficulty.InitialSpeed},
		{"difficulty.increment", c.Difficulty.Increment},
		{"scoring.points_per_unit", c.Scoring.PointsPerUnit},
	}
}

// Validate checks the configuration for values the simulation cannot run with.
// It returns the first problem found.
func (c RocketConfig) Validate() error {
	for _, f := range c.floatFields() {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("config: %s %g: %w", f.name, f.val, ErrNotFinite)
		}
	}

	if c.Rocket.Radius <= 0 {
		return fmt.Errorf("config: rocket.radius %g: %w", c.Rocket.Radius, ErrNonPositiveRadius)
	}
	if c.Obstacles.MinRadius <= 0 {
		return fmt.Errorf("config: obstacles.min_radius %g: %w", c.Obstacles.MinRadius, ErrNonPositiveRadius)
	}
	if c.Obstacles.MinRadius > c.Obstacles.MaxRadius {
		return fmt.Errorf("config: obstacles radius [%g, %g]: %w",
			c.Obstacles.MinRadius, c.Obstacles.MaxRadius, ErrInvertedBounds)
	}
	if c.Obstacles.MinHeight > c.Obstacles.MaxHeight {
		return fmt.Errorf("config: obstacles height [%g, %g]: %w",
			c.Obstacles.MinHeight, c.Obstacles.MaxHeight, ErrInvertedBounds)
	}
	if c.Corridor.MinY > c.Corridor.MaxY {
		return fmt.Errorf("config: corridor [%g, %g]: %w", c.Corridor.MinY, c.Corridor.MaxY, ErrInvertedBounds)
	}
	if c.Rocket.StartY < c.Corridor.MinY || c.Rocket.StartY > c.Corridor.MaxY {
		return fmt.Errorf("config: rocket.start_y %g: %w", c.Rocket.StartY, ErrOutsideCorridor)
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		return fmt.Errorf("config: obstacles.spawn_chance %g: %w", c.Obstacles.SpawnChance, ErrBadProbability)
	}
	if c.Obstacles.LeftX >= 0 || c.Obstacles.RightX <= 0 {
		return fmt.Errorf("config: obstacles.left_x %g, right_x %g: %w",
			c.Obstacles.LeftX, c.Obstacles.RightX, ErrBadSpawnSides)
	}
	if c.Difficulty.InitialSpeed <= 0 || c.Difficulty.Increment < 0 ||
		(c.Difficulty.Enabled && c.Difficulty.Increment == 0) {
		return fmt.Errorf("config: difficulty initial %g, increment %g: %w",
			c.Difficulty.InitialSpeed, c.Difficulty.Increment, ErrBadDifficulty)
	}

	nonNegative := []struct {
		name string
		val  float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.thrust_impulse", c.Physics.ThrustImpulse},
		{"physics.ease_impulse", c.Physics.EaseImpulse},
		{"obstacles.initial_count", float64(c.Obstacles.InitialCount)},
		{"obstacles.max_rotation_speed", c.Obstacles.MaxRotationSpeed},
		{"obstacles.max_speed", c.Obstacles.MaxSpeed},
		{"obstacles.approach_factor", c.Obstacles.ApproachFactor},
		{"obstacles.centering_factor", c.Obstacles.CenteringFactor},
		{"scoring.points_per_unit", c.Scoring.PointsPerUnit},
	}
	for _, p := range nonNegative {
		if p.val < 0 {
			return fmt.Errorf("config: %s %g: %w", p.name, p.val, ErrNegativeParameter)
		}
	}

	if c.Obstacles.Despawn.Enabled && c.Obstacles.Despawn.Bound <= 0 {
		return fmt.Errorf("config: obstacles.despawn.bound %g: %w", c.Obstacles.Despawn.Bound, ErrNegativeParameter)
	}

	return nil
}
