// Package sim provides the simulation core for the rocket-avoidance game.
// This package is UI-agnostic and deterministic for a given random source.
package sim

import "github.com/vovakirdan/rocket-arcade/internal/core"

// Kind tags which variant an Entity holds.
type Kind uint8

const (
	KindRocket Kind = iota + 1
	KindObstacle
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindRocket:
		return "Rocket"
	case KindObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Body is the positional record shared by every entity.
type Body struct {
	Pos    core.Vec3
	Radius float64 // Collision sphere radius, always > 0
}

// Rocket is the player-controlled entity. Exactly one exists per session.
type Rocket struct {
	Body
	Velocity  float64 // Vertical velocity, positive is up
	RotationY float64 // Visual heading in degrees
	Alive     bool
}

// Obstacle is a rock drifting across the lane.
type Obstacle struct {
	Body
	RotationSpeed float64 // Cosmetic spin rate
	Speed         float64 // Whole number in [0, max_speed) drawn at spawn
}

// Entity is a read-only view of one simulated object, as handed to renderers.
// Only the variant selected by Kind is meaningful.
type Entity struct {
	Kind     Kind
	Rocket   Rocket
	Obstacle Obstacle
}

// Body returns the positional record of the active variant.
func (e Entity) Body() Body {
	if e.Kind == KindRocket {
		return e.Rocket.Body
	}
	return e.Obstacle.Body
}

// Status is the session state machine's current state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
