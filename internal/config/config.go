// Package config provides YAML-based game configuration loading and
// difficulty presets for the rocket arcade.
package config

// RocketConfig contains all configuration for the rocket-avoidance game.
type RocketConfig struct {
	Rocket     RocketBody      `yaml:"rocket"`
	Physics    RocketPhysics   `yaml:"physics"`
	Corridor   Corridor        `yaml:"corridor"`
	Obstacles  RocketObstacles `yaml:"obstacles"`
	Difficulty RampConfig      `yaml:"difficulty"`
	Scoring    ScoringConfig   `yaml:"scoring"`
}

// RocketBody defines the rocket's initial pose and collision radius.
type RocketBody struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	StartZ float64 `yaml:"start_z"`
	Radius float64 `yaml:"radius"`
}

// RocketPhysics defines the vertical kinematics of the rocket.
type RocketPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // Velocity lost per tick
	ThrustImpulse float64 `yaml:"thrust_impulse"` // Velocity added per thrust signal
	EaseImpulse   float64 `yaml:"ease_impulse"`   // Velocity removed per ease signal
}

// Corridor bounds the rocket's flight height.
type Corridor struct {
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// RocketObstacles defines spawning and motion parameters for obstacles.
// All Min/Max pairs are sampled uniformly from the half-open range [min, max).
type RocketObstacles struct {
	SpawnChance      float64       `yaml:"spawn_chance"`  // Probability per tick, 0..1
	InitialCount     int           `yaml:"initial_count"` // Obstacles placed on reset
	LeftX            float64       `yaml:"left_x"`
	RightX           float64       `yaml:"right_x"`
	MinHeight        float64       `yaml:"min_height"`
	MaxHeight        float64       `yaml:"max_height"`
	MinRadius        float64       `yaml:"min_radius"`
	MaxRadius        float64       `yaml:"max_radius"`
	MaxRotationSpeed float64       `yaml:"max_rotation_speed"`
	MaxSpeed         float64       `yaml:"max_speed"`
	ApproachFactor   float64       `yaml:"approach_factor"`  // X advance per unit of difficulty
	CenteringFactor  float64       `yaml:"centering_factor"` // Pull toward X=0 per unit of difficulty
	Despawn          DespawnConfig `yaml:"despawn"`
}

// DespawnConfig controls removal of obstacles that leave the play area.
// Disabled by default: obstacles accumulate until the next reset.
type DespawnConfig struct {
	Enabled bool    `yaml:"enabled"`
	Bound   float64 `yaml:"bound"` // Obstacles with |x| > bound are removed
}

// RampConfig defines the difficulty factor and how it grows.
type RampConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialSpeed float64 `yaml:"initial_speed"` // Difficulty factor after reset
	Increment    float64 `yaml:"increment"`     // Added to the factor every playing tick
}

// ScoringConfig maps elapsed game time to score points.
type ScoringConfig struct {
	PointsPerUnit float64 `yaml:"points_per_unit"`
}

// EffectiveIncrement returns the per-tick factor increment, or zero when the
// ramp is disabled.
func (r RampConfig) EffectiveIncrement() float64 {
	if !r.Enabled {
		return 0
	}
	return r.Increment
}
