package rocket

import "math"

// State is the complete physical condition of the rocket at an instant.
// It is owned and mutated exclusively by one episode at a time.
type State struct {
	Position    Vec2    // meters; Y is altitude above the ground plane
	Velocity    Vec2    // meters/second
	Angle       float64 // radians from vertical upright, in (-pi, pi]
	AngularVel  float64 // radians/second
	FuelMass    float64 // kilograms, never negative
	DryMass     float64 // kilograms, constant for the episode
	TimeElapsed float64 // seconds since episode start
}

// TotalMass is dry mass plus remaining fuel.
func (s State) TotalMass() float64 {
	return s.DryMass + s.FuelMass
}

// Altitude is the height of the rocket above the ground plane.
func (s State) Altitude() float64 {
	return s.Position.Y
}

// Speed is the magnitude of the velocity vector.
func (s State) Speed() float64 {
	return s.Velocity.Norm()
}

// IsValid reports whether every component of the state is finite.
func (s State) IsValid() bool {
	return s.Position.IsValid() && s.Velocity.IsValid() &&
		isFinite(s.Angle) && isFinite(s.AngularVel) &&
		isFinite(s.FuelMass) && isFinite(s.TimeElapsed)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WrapAngle normalizes an angle to (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
