package rocket

import (
	"errors"
	"fmt"
)

// ErrParameterBounds indicates a physical parameter outside its valid range.
var ErrParameterBounds = errors.New("rocket: parameter out of valid bounds")

// Params holds the physical constants for one vehicle and world. A Params
// value is treated as immutable once handed to a ForceModel or Integrator,
// which keeps independent episode instances safe to run in parallel.
type Params struct {
	Gravity       float64 // m/s^2, constant below SpaceAltitude, zero above
	DryMass       float64 // kg
	FuelCapacity  float64 // kg
	MaxThrust     float64 // N, main engine at full throttle
	RCSThrust     float64 // N, per reaction-control thruster
	FuelBurnRate  float64 // kg/s at full main throttle
	RCSBurnFrac   float64 // RCS burn as a fraction of FuelBurnRate
	Inertia       float64 // kg*m^2, fixed for the episode
	Height        float64 // m, RCS torque arm is Height/2
	DragCoeff     float64 // dimensionless
	CrossSection  float64 // m^2
	SeaLevelRho   float64 // kg/m^3
	ScaleHeight   float64 // m, exponential atmosphere falloff
	SpaceAltitude float64 // m, air density and gravity treated as zero above

	// AngDamping is a per-step multiplier on angular velocity. The explicit
	// drag model handles translational damping, so no linear equivalent.
	AngDamping float64
}

// DefaultParams returns the reference vehicle: a small reusable booster
// with a thrust-to-weight ratio of about 1.5 at full fuel.
func DefaultParams() Params {
	return Params{
		Gravity:       9.81,
		DryMass:       5000,
		FuelCapacity:  15000,
		MaxThrust:     300000,
		RCSThrust:     1000,
		FuelBurnRate:  85.0,
		RCSBurnFrac:   0.1,
		Inertia:       50000,
		Height:        25,
		DragCoeff:     0.5,
		CrossSection:  10.0,
		SeaLevelRho:   1.225,
		ScaleHeight:   8500,
		SpaceAltitude: 100000,
		AngDamping:    0.98,
	}
}

// MoonGravity is the surface gravity used by the moon preset.
const MoonGravity = 1.62

func (p Params) Validate() error {
	checks := []struct {
		ok   bool
		name string
		val  float64
	}{
		{p.Gravity >= 0, "gravity", p.Gravity},
		{p.DryMass > 0, "dry_mass", p.DryMass},
		{p.FuelCapacity >= 0, "fuel_capacity", p.FuelCapacity},
		{p.MaxThrust >= 0, "max_thrust", p.MaxThrust},
		{p.RCSThrust >= 0, "rcs_thrust", p.RCSThrust},
		{p.FuelBurnRate >= 0, "fuel_burn_rate", p.FuelBurnRate},
		{p.RCSBurnFrac >= 0, "rcs_burn_frac", p.RCSBurnFrac},
		{p.Inertia > 0, "inertia", p.Inertia},
		{p.Height > 0, "height", p.Height},
		{p.DragCoeff >= 0, "drag_coeff", p.DragCoeff},
		{p.CrossSection >= 0, "cross_section", p.CrossSection},
		{p.SeaLevelRho >= 0, "sea_level_rho", p.SeaLevelRho},
		{p.ScaleHeight > 0, "scale_height", p.ScaleHeight},
		{p.SpaceAltitude > 0, "space_altitude", p.SpaceAltitude},
		{p.AngDamping > 0 && p.AngDamping <= 1, "ang_damping", p.AngDamping},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s = %g", ErrParameterBounds, c.name, c.val)
		}
	}
	return nil
}

// HoverThrottle returns the throttle fraction that exactly cancels weight
// for the given state, clamped to [0, 1]. Useful for scripted policies.
func (p Params) HoverThrottle(s State) float64 {
	if p.MaxThrust <= 0 {
		return 0
	}
	t := s.TotalMass() * p.Gravity / p.MaxThrust
	if t > 1 {
		return 1
	}
	return t
}
