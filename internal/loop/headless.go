package loop

import "github.com/vovakirdan/rocket-arcade/internal/games/rocket/sim"

// Script returns the signals to deliver before a given tick (0-based).
type Script func(tick int) []sim.Signal

// ThrustEvery returns a script that thrusts once every n ticks.
// n <= 0 never thrusts.
func ThrustEvery(n int) Script {
	return func(tick int) []sim.Signal {
		if n <= 0 || tick%n != 0 {
			return nil
		}
		return []sim.Signal{sim.SignalThrust}
	}
}

// Result summarises a headless run.
type Result struct {
	Ticks      int  // Ticks driven, including the one that ended the game
	GameOver   bool // Whether the run ended in a collision
	GameOverAt int  // Tick index of the collision, -1 if none
	Final      sim.Snapshot
}

// RunTicks drives the session for up to n ticks without a clock, delivering
// scripted signals before each tick. It stops early at game over, since a
// finished session no longer changes. A nil script sends nothing.
func RunTicks(s *sim.Session, n int, script Script) Result {
	res := Result{GameOverAt: -1}

	for i := 0; i < n; i++ {
		if script != nil {
			for _, sig := range script(i) {
				s.Signal(sig)
			}
		}

		s.Tick()
		res.Ticks++

		if s.GameOver() {
			res.GameOver = true
			res.GameOverAt = i
			break
		}
	}

	res.Final = s.Snapshot()
	return res
}
