package policy

import (
	"math"

	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/rocket"
)

// Descent is a scripted full-mission baseline: burn straight up until
// the space milestone latches, then fall back and fly a braking burn
// that tracks an altitude-dependent descent speed down to touchdown.
// Attitude is held upright with RCS throughout. It is not optimal, but
// it lands, which makes it a useful reference agent and demo policy.
type Descent struct {
	p rocket.Params

	// SpeedGain converts descent-speed error (m/s) into throttle.
	SpeedGain float64
	// MaxDescentSpeed caps the commanded fall rate high up.
	MaxDescentSpeed float64
	// AngleDeadband is the attitude error below which RCS stays quiet.
	AngleDeadband float64
}

func NewDescent(p rocket.Params) *Descent {
	return &Descent{
		p:               p,
		SpeedGain:       0.05,
		MaxDescentSpeed: 120,
		AngleDeadband:   0.02,
	}
}

func (d *Descent) Act(obs env.Observation, s rocket.State) rocket.Action {
	var a rocket.Action

	// Attitude hold: lead the angle by half a second of rotation so the
	// RCS damps instead of chasing.
	predicted := s.Angle + 0.5*s.AngularVel
	if predicted > d.AngleDeadband {
		a.RCSLeft = true
	} else if predicted < -d.AngleDeadband {
		a.RCSRight = true
	}

	if obs[env.ObsReachedSpace] == 0 {
		// Ascent: full burn until the milestone latches.
		a.Throttle = 1
		return a
	}

	if s.Velocity.Y > 0 {
		// Coasting upward after the milestone; let gravity do the work.
		return a
	}

	// Braking burn: command a descent speed that shrinks with altitude,
	// closing to a gentle touchdown.
	target := -math.Min(d.MaxDescentSpeed, 0.08*s.Altitude()+2)
	errSpeed := target - s.Velocity.Y // positive when falling too fast
	if errSpeed > 0 {
		a.Throttle = d.p.HoverThrottle(s) + d.SpeedGain*errSpeed
		if a.Throttle > 1 {
			a.Throttle = 1
		}
	}
	return a
}

func (d *Descent) Reset() {}
