package sim

import "github.com/vovakirdan/rocket-arcade/internal/core"

// DetectCollision tests the rocket against every obstacle in order and
// returns the index of the first one whose sphere overlaps the rocket's.
func DetectCollision(r Rocket, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if core.SpheresOverlap(r.Pos, r.Radius, o.Pos, o.Radius) {
			return i, true
		}
	}
	return -1, false
}
