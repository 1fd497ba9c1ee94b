package sim

import (
	"math"

	"github.com/vovakirdan/rocket-arcade/internal/config"
)

// Motion advances obstacles across the lane.
type Motion struct {
	Approach  float64 // X advance per unit of difficulty
	Centering float64 // Pull toward X=0 per unit of difficulty
	Despawn   bool
	Bound     float64 // Used only when Despawn is set
}

// NewMotion builds the motion model from obstacle config.
func NewMotion(cfg config.RocketObstacles) Motion {
	return Motion{
		Approach:  cfg.ApproachFactor,
		Centering: cfg.CenteringFactor,
		Despawn:   cfg.Despawn.Enabled,
		Bound:     cfg.Despawn.Bound,
	}
}

// Advance moves every obstacle by the current difficulty factor and returns
// the live collection. Obstacles are only dropped when despawn is enabled,
// in which case the returned count of removed obstacles may be non-zero.
//
// The approach term always pushes toward +X, so obstacles entering from the
// right drift away while those from the left cross the rocket's column.
func (m Motion) Advance(obstacles []Obstacle, factor float64) ([]Obstacle, int) {
	for i := range obstacles {
		o := &obstacles[i]
		o.Pos.X += factor * m.Approach

		switch {
		case o.Pos.X < 0:
			o.Pos.X += factor * m.Centering
		case o.Pos.X > 0:
			o.Pos.X -= factor * m.Centering
		}
	}

	if !m.Despawn {
		return obstacles, 0
	}

	kept := obstacles[:0]
	for _, o := range obstacles {
		if math.Abs(o.Pos.X) <= m.Bound {
			kept = append(kept, o)
		}
	}
	removed := len(obstacles) - len(kept)

	// Zero the tail so dropped obstacles do not linger in the backing array
	for i := len(kept); i < len(obstacles); i++ {
		obstacles[i] = Obstacle{}
	}
	return kept, removed
}
