package sim

import "testing"

func TestClockAdvance(t *testing.T) {
	c := NewClock(0.05, 0.0001)

	f := c.Advance()
	if f != 0.05 {
		t.Errorf("first tick factor = %g, expected initial 0.05", f)
	}
	if c.Elapsed != 0.05 {
		t.Errorf("elapsed = %g, expected 0.05", c.Elapsed)
	}
	if !approx(c.Factor, 0.0501) {
		t.Errorf("factor after tick = %g, expected 0.0501", c.Factor)
	}

	f = c.Advance()
	if !approx(f, 0.0501) || !approx(c.Elapsed, 0.1001) {
		t.Errorf("second tick factor %g elapsed %g", f, c.Elapsed)
	}
	if c.Ticks != 2 {
		t.Errorf("ticks = %d, expected 2", c.Ticks)
	}
}

func TestClockStrictlyIncreasing(t *testing.T) {
	c := NewClock(0.05, 0.0001)
	prev := c.Factor
	for i := 0; i < 10000; i++ {
		c.Advance()
		if c.Factor <= prev {
			t.Fatalf("tick %d: factor %g did not increase from %g", i, c.Factor, prev)
		}
		prev = c.Factor
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(0.05, 0.0001)
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	c.Reset()

	if c.Elapsed != 0 || c.Factor != 0.05 || c.Ticks != 0 {
		t.Errorf("Reset() left %+v", c)
	}
}
