package env

import "fmt"

// RewardConfig holds every reward-shaping coefficient. The exact
// magnitudes are tunable; Validate enforces the one hard requirement,
// that a landing is always worth more than a timeout and a timeout more
// than a crash.
type RewardConfig struct {
	// Per-step shaping penalties.
	FuelWeight  float64 `yaml:"fuel_weight"`  // per kg of fuel burned
	AngleWeight float64 `yaml:"angle_weight"` // per rad off upright
	DriftWeight float64 `yaml:"drift_weight"` // per PositionScale of horizontal drift

	// One-time milestone bonus when the space latch flips.
	SpaceBonus float64 `yaml:"space_bonus"`

	// Terminal values. CrashPenalty is stored positive and subtracted.
	LandedBonus     float64 `yaml:"landed_bonus"`
	CrashPenalty    float64 `yaml:"crash_penalty"`
	TimedOutPenalty float64 `yaml:"timed_out_penalty"` // zero or small negative
}

func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		FuelWeight:      0.01,
		AngleWeight:     0.1,
		DriftWeight:     0.05,
		SpaceBonus:      50,
		LandedBonus:     100,
		CrashPenalty:    100,
		TimedOutPenalty: 0,
	}
}

func (c RewardConfig) Validate() error {
	if c.FuelWeight < 0 || c.AngleWeight < 0 || c.DriftWeight < 0 {
		return fmt.Errorf("%w: shaping weights must be non-negative", ErrInvalidConfiguration)
	}
	if c.CrashPenalty < 0 {
		return fmt.Errorf("%w: crash penalty must be non-negative", ErrInvalidConfiguration)
	}
	// Required terminal ordering: Landed > TimedOut > Crashed.
	if !(c.LandedBonus > c.TimedOutPenalty) || !(c.TimedOutPenalty > -c.CrashPenalty) {
		return fmt.Errorf("%w: terminal reward ordering must satisfy landed > timed_out > crashed", ErrInvalidConfiguration)
	}
	return nil
}

// shaping is the per-step penalty: fuel burned, tilt, and horizontal
// drift from the pad-centered corridor.
func (c RewardConfig) shaping(fuelBurned, angle, x float64) float64 {
	if angle < 0 {
		angle = -angle
	}
	if x < 0 {
		x = -x
	}
	return -c.FuelWeight*fuelBurned - c.AngleWeight*angle - c.DriftWeight*x/PositionScale
}
