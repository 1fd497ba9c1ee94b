package sim

import (
	"math/rand"
)

// Source yields uniform random values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudo-random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// It makes spawn decisions scriptable in tests and replays.
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource creates a source cycling through values.
// Values outside [0, 1) are clamped into range.
func NewSequenceSource(values ...float64) *SequenceSource {
	clean := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v < 0:
			v = 0
		case v >= 1:
			v = 0.999999
		}
		clean[i] = v
	}
	if len(clean) == 0 {
		clean = []float64{0}
	}
	return &SequenceSource{values: clean}
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

