package sim

import "github.com/vovakirdan/rocket-arcade/internal/config"

// Kinematics integrates the rocket's vertical motion inside the corridor.
type Kinematics struct {
	Gravity       float64
	ThrustImpulse float64
	EaseImpulse   float64
	MinY          float64
	MaxY          float64
}

// NewKinematics builds the kinematics model from config.
func NewKinematics(cfg config.RocketConfig) Kinematics {
	return Kinematics{
		Gravity:       cfg.Physics.Gravity,
		ThrustImpulse: cfg.Physics.ThrustImpulse,
		EaseImpulse:   cfg.Physics.EaseImpulse,
		MinY:          cfg.Corridor.MinY,
		MaxY:          cfg.Corridor.MaxY,
	}
}

// Thrust adds upward velocity.
func (k Kinematics) Thrust(r *Rocket) {
	r.Velocity += k.ThrustImpulse
}

// Ease removes a smaller amount of velocity.
func (k Kinematics) Ease(r *Rocket) {
	r.Velocity -= k.EaseImpulse
}

// Step integrates one tick: position by velocity, then gravity, then the
// corridor clamp. Reports whether the rocket hit the floor or ceiling.
//
// Hitting a bound absorbs momentum instead of bouncing. A rocket resting on
// a bound with velocity pointing out of the corridor also counts as a hit,
// so a grounded rocket settles at zero velocity.
func (k Kinematics) Step(r *Rocket) bool {
	r.Pos.Y += r.Velocity
	r.Velocity -= k.Gravity

	switch {
	case r.Pos.Y < k.MinY || (r.Pos.Y == k.MinY && r.Velocity < 0):
		r.Pos.Y = k.MinY
		r.Velocity = 0
		return true
	case r.Pos.Y > k.MaxY || (r.Pos.Y == k.MaxY && r.Velocity > 0):
		r.Pos.Y = k.MaxY
		r.Velocity = 0
		return true
	}
	return false
}
