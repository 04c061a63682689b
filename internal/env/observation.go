package env

import "math"

// Observation is the fixed-size numeric view of the episode handed to
// agents. Normalization constants are fixed so space bounds are stable
// across episodes.
type Observation []float64

// ObservationSize is the length of every observation vector.
const ObservationSize = 9

// Normalization scales. These are deliberate constants, not derived from
// configuration, so two environments with different vehicles still share
// one observation space.
const (
	PositionScale   = 1000.0   // m, horizontal
	AltitudeScale   = 100000.0 // m, the space threshold
	VelocityScale   = 500.0    // m/s
	AngularVelScale = 10.0     // rad/s
)

// Observation indices.
const (
	ObsX = iota
	ObsAltitude
	ObsVX
	ObsVY
	ObsAngle
	ObsAngularVel
	ObsFuelFraction
	ObsReachedSpace
	ObsTimeRemaining
)

func (e *Env) observe() Observation {
	s := e.state
	obs := make(Observation, ObservationSize)
	obs[ObsX] = s.Position.X / PositionScale
	obs[ObsAltitude] = s.Position.Y / AltitudeScale
	obs[ObsVX] = s.Velocity.X / VelocityScale
	obs[ObsVY] = s.Velocity.Y / VelocityScale
	obs[ObsAngle] = s.Angle / math.Pi
	obs[ObsAngularVel] = s.AngularVel / AngularVelScale
	if e.cfg.Params.FuelCapacity > 0 {
		obs[ObsFuelFraction] = s.FuelMass / e.cfg.Params.FuelCapacity
	}
	if e.reachedSpace {
		obs[ObsReachedSpace] = 1
	}
	remaining := (e.cfg.MaxEpisodeTime - s.TimeElapsed) / e.cfg.MaxEpisodeTime
	if remaining < 0 {
		remaining = 0
	}
	obs[ObsTimeRemaining] = remaining
	return obs
}
