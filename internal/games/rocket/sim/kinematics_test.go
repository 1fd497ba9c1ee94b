package sim

import (
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

func rocketAt(y, v float64) Rocket {
	return Rocket{
		Body:     Body{Pos: core.V3(0, y, 0), Radius: 0.2},
		Velocity: v,
		Alive:    true,
	}
}

func TestKinematicsFloorAbsorbsMomentum(t *testing.T) {
	k := NewKinematics(config.DefaultRocketConfig())
	r := rocketAt(0.8, -0.05)

	clamped := k.Step(&r)

	if !clamped {
		t.Error("step below the floor should report a clamp")
	}
	if r.Pos.Y != 0.8 {
		t.Errorf("Y = %g, expected floor 0.8", r.Pos.Y)
	}
	if r.Velocity != 0 {
		t.Errorf("velocity = %g, expected 0 after floor contact", r.Velocity)
	}
}

func TestKinematicsCeiling(t *testing.T) {
	k := NewKinematics(config.DefaultRocketConfig())
	r := rocketAt(3.99, 0.05)

	if !k.Step(&r) {
		t.Error("step above the ceiling should report a clamp")
	}
	if r.Pos.Y != 4.0 || r.Velocity != 0 {
		t.Errorf("got Y=%g v=%g, expected ceiling 4.0 with zero velocity", r.Pos.Y, r.Velocity)
	}
}

func TestKinematicsIntegrationOrder(t *testing.T) {
	k := NewKinematics(config.DefaultRocketConfig())
	r := rocketAt(2.0, 0.02)

	if k.Step(&r) {
		t.Error("mid-corridor step should not clamp")
	}
	// Position moves by the old velocity, then gravity applies
	if !approx(r.Pos.Y, 2.02) {
		t.Errorf("Y = %g, expected 2.02", r.Pos.Y)
	}
	if !approx(r.Velocity, 0.019) {
		t.Errorf("velocity = %g, expected 0.019", r.Velocity)
	}
	if r.Pos.X != 0 || r.Pos.Z != 0 {
		t.Error("kinematics must not move X or Z")
	}
}

func TestKinematicsImpulses(t *testing.T) {
	k := NewKinematics(config.DefaultRocketConfig())
	r := rocketAt(2.0, 0)

	k.Thrust(&r)
	if !approx(r.Velocity, 0.02) {
		t.Errorf("after thrust velocity = %g, expected 0.02", r.Velocity)
	}

	k.Ease(&r)
	if !approx(r.Velocity, 0.01) {
		t.Errorf("after ease velocity = %g, expected 0.01", r.Velocity)
	}
}

func TestKinematicsSettlesOnFloor(t *testing.T) {
	k := NewKinematics(config.DefaultRocketConfig())
	r := rocketAt(2.4, 0)

	for i := 0; i < 1000; i++ {
		k.Step(&r)
		if r.Pos.Y < k.MinY {
			t.Fatalf("tick %d: Y = %g below floor", i, r.Pos.Y)
		}
	}

	if r.Pos.Y != k.MinY || r.Velocity != 0 {
		t.Errorf("got Y=%g v=%g, expected to rest at %g with zero velocity", r.Pos.Y, r.Velocity, k.MinY)
	}
}
