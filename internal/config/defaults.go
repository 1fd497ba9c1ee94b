package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the default rocket game configuration.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Rocket: RocketBody{
			StartX: 0.0,
			StartY: 1.0,
			StartZ: 0.0,
			Radius: 0.2,
		},
		Physics: RocketPhysics{
			Gravity:       0.001,
			ThrustImpulse: 0.02,
			EaseImpulse:   0.01,
		},
		Corridor: Corridor{
			MinY: 0.8,
			MaxY: 4.0,
		},
		Obstacles: RocketObstacles{
			SpawnChance:      0.03,
			InitialCount:     2,
			LeftX:            -8.0,
			RightX:           8.0,
			MinHeight:        0.5,
			MaxHeight:        4.4,
			MinRadius:        0.3,
			MaxRadius:        0.34,
			MaxRotationSpeed: 1.0,
			MaxSpeed:         5.0,
			ApproachFactor:   2.0,
			CenteringFactor:  0.5,
			Despawn: DespawnConfig{
				Enabled: false,
				Bound:   12.0,
			},
		},
		Difficulty: RampConfig{
			Enabled:      true,
			InitialSpeed: 0.05,
			Increment:    0.0001,
		},
		Scoring: ScoringConfig{
			PointsPerUnit: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rocket", "rocket_despawn":
		return defaultRocketYAML
	default:
		return nil
	}
}
