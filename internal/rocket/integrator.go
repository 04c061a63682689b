package rocket

// Contact describes a ground interaction during a step.
type Contact struct {
	Grounded bool
	// ImpactVelocity is the velocity at the instant of touchdown, before
	// the clamp zeroes the vertical component. Landing quality is judged
	// on this, not on the post-clamp velocity.
	ImpactVelocity Vec2
}

// Integrator advances rocket state by one fixed timestep using
// semi-implicit Euler: velocity is updated first and the new velocity
// moves the position. That keeps the scheme stable from the launch pad
// up to the edge of space without adaptive stepping.
type Integrator struct {
	p Params
}

func NewIntegrator(p Params) *Integrator {
	return &Integrator{p: p}
}

// Step applies the given forces over dt and returns the new state plus
// ground-contact information. On contact the altitude is exactly zero and
// the vertical velocity is zeroed: a hard collision, not a soft stop, so
// touchdown is detectable deterministically.
func (in *Integrator) Step(s State, f Forces, dt float64) (State, Contact) {
	mass := s.TotalMass()

	s.Velocity = s.Velocity.Add(f.Force.Scale(dt / mass))
	s.Position = s.Position.Add(s.Velocity.Scale(dt))

	s.AngularVel += f.Torque / in.p.Inertia * dt
	s.AngularVel *= in.p.AngDamping
	s.Angle = WrapAngle(s.Angle + s.AngularVel*dt)

	s.FuelMass -= f.FuelBurned
	if s.FuelMass < 0 {
		s.FuelMass = 0
	}

	s.TimeElapsed += dt

	var c Contact
	if s.Position.Y < 0 {
		c.Grounded = true
		c.ImpactVelocity = s.Velocity
		s.Position.Y = 0
		s.Velocity.Y = 0
	}
	return s, c
}
