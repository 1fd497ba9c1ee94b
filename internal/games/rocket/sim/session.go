package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// ErrNilSource is returned when a session is built without randomness.
var ErrNilSource = errors.New("sim: random source is nil")

// Signal is a zero-argument user intent delivered to the session.
type Signal uint8

const (
	SignalThrust Signal = iota + 1
	SignalEase
	SignalTogglePause
	SignalReset
)

// String returns the string representation of a signal.
func (s Signal) String() string {
	switch s {
	case SignalThrust:
		return "Thrust"
	case SignalEase:
		return "Ease"
	case SignalTogglePause:
		return "TogglePause"
	case SignalReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Session is the complete mutable state of one play-through.
// It is not safe for concurrent use; a single driver owns it.
type Session struct {
	cfg     config.RocketConfig
	spawner *Spawner
	kin     Kinematics
	motion  Motion
	clock   Clock

	rocket    Rocket
	obstacles []Obstacle
	status    Status

	blamed    int    // Index of the obstacle that ended the game, -1 if none
	spawned   uint64 // Obstacles added by chance since reset
	despawned uint64 // Obstacles removed by the despawn option since reset
}

// NewSession validates cfg and returns a session reset to its initial state.
func NewSession(cfg config.RocketConfig, src Source) (*Session, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Session{
		cfg:     cfg,
		spawner: NewSpawner(cfg.Obstacles, src),
		kin:     NewKinematics(cfg),
		motion:  NewMotion(cfg.Obstacles),
		clock:   NewClock(cfg.Difficulty.InitialSpeed, cfg.Difficulty.EffectiveIncrement()),
	}
	s.Reset()
	return s, nil
}

// Reset rebuilds the rocket at its starting pose, replaces the obstacle set
// with exactly InitialCount fresh obstacles and restarts the clock.
// Valid from any status.
func (s *Session) Reset() {
	s.rocket = Rocket{
		Body: Body{
			Pos:    core.V3(s.cfg.Rocket.StartX, s.cfg.Rocket.StartY, s.cfg.Rocket.StartZ),
			Radius: s.cfg.Rocket.Radius,
		},
		Alive: true,
	}

	s.obstacles = s.obstacles[:0]
	for i := 0; i < s.cfg.Obstacles.InitialCount; i++ {
		s.obstacles = append(s.obstacles, s.spawner.Spawn(s.rocket.Pos.Z))
	}

	s.clock.Reset()
	s.status = StatusPlaying
	s.blamed = -1
	s.spawned = 0
	s.despawned = 0
}

// Signal delivers one user intent. It reports whether the signal changed
// session state; signals that do not apply in the current status are
// absorbed without effect.
//
//   - Thrust, Ease: Playing only.
//   - TogglePause: Playing <-> Paused; ignored after game over.
//   - Reset: always.
func (s *Session) Signal(sig Signal) bool {
	switch sig {
	case SignalThrust:
		if s.status != StatusPlaying {
			return false
		}
		s.kin.Thrust(&s.rocket)
		return true

	case SignalEase:
		if s.status != StatusPlaying {
			return false
		}
		s.kin.Ease(&s.rocket)
		return true

	case SignalTogglePause:
		switch s.status {
		case StatusPlaying:
			s.status = StatusPaused
			return true
		case StatusPaused:
			s.status = StatusPlaying
			return true
		}
		return false

	case SignalReset:
		s.Reset()
		return true
	}
	return false
}

// Tick advances the simulation by one fixed step. Does nothing unless Playing.
//
// Order: clock, rocket kinematics, obstacle motion, spawn roll, collision.
func (s *Session) Tick() {
	if s.status != StatusPlaying {
		return
	}

	factor := s.clock.Advance()
	s.kin.Step(&s.rocket)

	var removed int
	s.obstacles, removed = s.motion.Advance(s.obstacles, factor)
	s.despawned += uint64(removed)

	var added bool
	s.obstacles, added = s.spawner.MaybeSpawn(s.obstacles, s.rocket.Pos.Z)
	if added {
		s.spawned++
	}

	s.checkCollisions()
}

// checkCollisions ends the game on the first overlapping obstacle.
// A dead rocket is never checked again.
func (s *Session) checkCollisions() {
	if s.status == StatusGameOver || !s.rocket.Alive {
		return
	}

	if idx, hit := DetectCollision(s.rocket, s.obstacles); hit {
		s.rocket.Alive = false
		s.status = StatusGameOver
		s.blamed = idx
	}
}

// Rocket returns a copy of the rocket.
func (s *Session) Rocket() Rocket {
	return s.rocket
}

// Obstacles returns a copy of the live obstacles in collection order.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// ObstacleCount returns the number of live obstacles without copying.
func (s *Session) ObstacleCount() int {
	return len(s.obstacles)
}

// Entities returns every entity for rendering, rocket first.
func (s *Session) Entities() []Entity {
	out := make([]Entity, 0, len(s.obstacles)+1)
	out = append(out, Entity{Kind: KindRocket, Rocket: s.rocket})
	for _, o := range s.obstacles {
		out = append(out, Entity{Kind: KindObstacle, Obstacle: o})
	}
	return out
}

// Status returns the current state machine state.
func (s *Session) Status() Status {
	return s.status
}

// GameOver reports whether the rocket has collided.
func (s *Session) GameOver() bool {
	return s.status == StatusGameOver
}

// Elapsed returns simulated time since the last reset.
func (s *Session) Elapsed() float64 {
	return s.clock.Elapsed
}

// Difficulty returns the current difficulty factor.
func (s *Session) Difficulty() float64 {
	return s.clock.Factor
}

// Ticks returns the number of playing ticks since the last reset.
func (s *Session) Ticks() uint64 {
	return s.clock.Ticks
}

// Score converts elapsed simulated time into points.
func (s *Session) Score() int {
	return int(s.clock.Elapsed * s.cfg.Scoring.PointsPerUnit)
}

// Blamed returns the obstacle that ended the game, if any.
func (s *Session) Blamed() (Obstacle, bool) {
	if s.blamed < 0 || s.blamed >= len(s.obstacles) {
		return Obstacle{}, false
	}
	return s.obstacles[s.blamed], true
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RocketConfig {
	return s.cfg
}
