package sim

// Clock tracks simulated time and the difficulty factor.
// Simulated time advances by the factor, not by wall time.
type Clock struct {
	Elapsed float64
	Factor  float64
	Ticks   uint64

	initial   float64
	increment float64
}

// NewClock creates a clock starting at factor initial.
func NewClock(initial, increment float64) Clock {
	c := Clock{initial: initial, increment: increment}
	c.Reset()
	return c
}

// Reset returns the clock to its starting values.
func (c *Clock) Reset() {
	c.Elapsed = 0
	c.Factor = c.initial
	c.Ticks = 0
}

// Advance runs one tick and returns the factor that applied to it.
// Callers that scale motion by difficulty must use the returned value so
// every consumer sees the same factor within a tick.
func (c *Clock) Advance() float64 {
	f := c.Factor
	c.Elapsed += f
	c.Factor += c.increment
	c.Ticks++
	return f
}
