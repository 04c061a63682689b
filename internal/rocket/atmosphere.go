package rocket

import "math"

// Density returns air density at the given altitude using an exponential
// profile. Above SpaceAltitude it is exactly zero so drag vanishes and the
// "reached space" milestone is a hard boundary rather than an asymptote.
func (p Params) Density(altitude float64) float64 {
	if altitude >= p.SpaceAltitude {
		return 0
	}
	if altitude < 0 {
		altitude = 0
	}
	return p.SeaLevelRho * math.Exp(-altitude/p.ScaleHeight)
}

// GravityAt returns gravitational acceleration at the given altitude:
// constant below the space threshold, zero at and above it.
func (p Params) GravityAt(altitude float64) float64 {
	if altitude >= p.SpaceAltitude {
		return 0
	}
	return p.Gravity
}
