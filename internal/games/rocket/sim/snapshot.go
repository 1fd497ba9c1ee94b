package sim

// Snapshot is an immutable copy of session state at one point in time.
type Snapshot struct {
	Status     Status
	Rocket     Rocket
	Obstacles  []Obstacle
	Elapsed    float64
	Difficulty float64
	Ticks      uint64
	Score      int
	Spawned    uint64
	Despawned  uint64
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Status:     s.status,
		Rocket:     s.rocket,
		Obstacles:  s.Obstacles(),
		Elapsed:    s.clock.Elapsed,
		Difficulty: s.clock.Factor,
		Ticks:      s.clock.Ticks,
		Score:      s.Score(),
		Spawned:    s.spawned,
		Despawned:  s.despawned,
	}
}
