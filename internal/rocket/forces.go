package rocket

import "math"

// Forces is the net force/torque on the rocket for one instant, together
// with the fuel that the step will consume and the throttle that was
// actually achievable given remaining fuel.
type Forces struct {
	Force      Vec2    // N
	Torque     float64 // N*m, positive increases Angle
	FuelBurned float64 // kg consumed over the step
	Throttle   float64 // effective main throttle after fuel limiting
}

// ForceModel computes net force and torque from state, action, and wind.
// It is a pure function of its inputs; fuel availability is enforced by
// reducing the effective throttle, never by mutating state.
type ForceModel struct {
	p Params
}

func NewForceModel(p Params) *ForceModel {
	return &ForceModel{p: p}
}

// Compute returns the forces acting on the rocket for a step of length dt.
// The action is sanitized first, so callers may pass raw inputs.
//
// Fuel limiting: RCS draws its (much smaller) burn from the shared pool
// first, then the main engine throttle is clamped to whatever the
// remaining budget can sustain for this step. An empty tank silently
// saturates thrust at zero; it is not an error.
func (f *ForceModel) Compute(s State, a Action, wind Vec2, dt float64) Forces {
	a = a.Sanitize()
	p := f.p

	var out Forces
	budget := s.FuelMass

	rcsActive := a.RCSLeft || a.RCSRight
	if rcsActive && budget > 0 {
		rcsBurn := p.FuelBurnRate * p.RCSBurnFrac * dt
		if rcsBurn > budget {
			rcsBurn = budget
		}
		arm := p.Height / 2
		if a.RCSLeft {
			out.Torque -= p.RCSThrust * arm
		} else {
			out.Torque += p.RCSThrust * arm
		}
		out.FuelBurned += rcsBurn
		budget -= rcsBurn
	}

	throttle := a.Throttle
	if throttle > 0 {
		mainBurn := p.FuelBurnRate * throttle * dt
		if mainBurn > budget {
			// Clamp throttle to the fuel-limited maximum for this step.
			if p.FuelBurnRate*dt > 0 {
				throttle = budget / (p.FuelBurnRate * dt)
			} else {
				throttle = 0
			}
			mainBurn = budget
		}
		if throttle > 0 {
			thrust := p.MaxThrust * throttle
			sin, cos := math.Sincos(s.Angle)
			out.Force.X += sin * thrust
			out.Force.Y += cos * thrust
			out.FuelBurned += mainBurn
		}
	}
	out.Throttle = throttle

	// Gravity acts on the full current mass.
	out.Force.Y -= s.TotalMass() * p.GravityAt(s.Altitude())

	// Drag opposes velocity relative to wind; wind is a velocity offset,
	// not a force of its own.
	rho := p.Density(s.Altitude())
	if rho > 0 {
		rel := s.Velocity.Sub(wind)
		speed := rel.Norm()
		if speed > 0 {
			drag := 0.5 * rho * p.DragCoeff * p.CrossSection * speed
			out.Force = out.Force.Sub(rel.Scale(drag))
		}
	}

	return out
}
