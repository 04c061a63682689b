package env

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/rocketsim/internal/rocket"
)

// Config describes one environment instance. It is validated once in New;
// independent instances can run in parallel because nothing here is
// shared or mutated after construction.
type Config struct {
	Params rocket.Params
	Reward RewardConfig

	Dt             float64 // s, fixed timestep per Step call
	MaxEpisodeTime float64 // s, truncation limit

	SafeLandingSpeed float64 // m/s, |impact velocity| below this is survivable
	SafeLandingAngle float64 // rad, |angle| below this counts as upright
	PadHalfWidth     float64 // m, |x| must be inside to land; <= 0 disables

	WindMax   float64 // m/s, base wind sampled uniformly in [-WindMax, WindMax]
	GustSigma float64 // m/s, stddev of per-step horizontal gusts

	StartAltitude float64 // m
	StartX        float64 // m
	StartFuel     float64 // kg

	Seed int64
}

// DefaultConfig returns the reference mission: launch from the pad with
// full tanks, reach space, come back, land on the pad.
func DefaultConfig() Config {
	p := rocket.DefaultParams()
	return Config{
		Params:           p,
		Reward:           DefaultRewardConfig(),
		Dt:               0.1,
		MaxEpisodeTime:   200,
		SafeLandingSpeed: 5.0,
		SafeLandingAngle: 0.2,
		PadHalfWidth:     50,
		WindMax:          5,
		GustSigma:        0.5,
		StartAltitude:    0,
		StartX:           0,
		StartFuel:        p.FuelCapacity,
		Seed:             1,
	}
}

func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if err := c.Reward.Validate(); err != nil {
		return err
	}
	switch {
	case c.Dt <= 0:
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfiguration, c.Dt)
	case c.MaxEpisodeTime <= 0:
		return fmt.Errorf("%w: max episode time must be positive, got %g", ErrInvalidConfiguration, c.MaxEpisodeTime)
	case c.SafeLandingSpeed <= 0:
		return fmt.Errorf("%w: safe landing speed must be positive, got %g", ErrInvalidConfiguration, c.SafeLandingSpeed)
	case c.SafeLandingAngle <= 0:
		return fmt.Errorf("%w: safe landing angle must be positive, got %g", ErrInvalidConfiguration, c.SafeLandingAngle)
	case c.WindMax < 0 || c.GustSigma < 0:
		return fmt.Errorf("%w: wind parameters must be non-negative", ErrInvalidConfiguration)
	case c.StartAltitude < 0:
		return fmt.Errorf("%w: start altitude must be non-negative, got %g", ErrInvalidConfiguration, c.StartAltitude)
	case c.StartFuel < 0 || c.StartFuel > c.Params.FuelCapacity:
		return fmt.Errorf("%w: start fuel %g outside [0, %g]", ErrInvalidConfiguration, c.StartFuel, c.Params.FuelCapacity)
	}
	return nil
}

// ResetOptions overrides the configured launch conditions for one
// episode. A nil options pointer keeps the configured defaults.
type ResetOptions struct {
	Altitude float64
	X        float64
	Fuel     float64
	// Wind fixes the base wind instead of sampling it. Gusts still apply.
	Wind *rocket.Vec2
}

// Info is the auxiliary diagnostics returned alongside each observation.
type Info struct {
	Time         float64
	Fuel         float64
	Altitude     float64
	Speed        float64
	Throttle     float64 // effective main throttle after fuel limiting
	Wind         rocket.Vec2
	Phase        Phase
	ReachedSpace bool
	// ImpactSpeed is the pre-clamp touchdown speed, set only on the step
	// that ends the flight on the ground. The clamp zeroes the state's
	// vertical velocity, so this is the only place the true value survives.
	ImpactSpeed float64
}

// StepResult is the full outcome of one Step call.
type StepResult struct {
	Obs        Observation
	Reward     float64
	Terminated bool
	Truncated  bool
	Info       Info
}

// Env is the episode controller: it owns one rocket state, applies an
// action per step through the force model and integrator, evaluates
// termination, and computes reward and observation. It is not safe for
// concurrent use; it is the sole mutator of its state.
type Env struct {
	cfg    Config
	forces *rocket.ForceModel
	integ  *rocket.Integrator

	rng          *rand.Rand
	state        rocket.State
	wind         rocket.Vec2
	phase        Phase
	reachedSpace bool
	airborne     bool

	// Discrete-mode throttle console (see discrete.go).
	engineOn    bool
	throttleSet float64

	closed bool
}

// New constructs an environment and resets it to launch conditions.
func New(cfg Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Env{
		cfg:    cfg,
		forces: rocket.NewForceModel(cfg.Params),
		integ:  rocket.NewIntegrator(cfg.Params),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	e.reset(nil)
	return e, nil
}

// Reset reinitializes the rocket to launch conditions, clears the space
// latch, and resamples wind. A non-zero seed reseeds the episode's random
// source first; seed zero continues the existing stream. Invalid options
// fail with ErrInvalidConfiguration and leave the environment untouched.
func (e *Env) Reset(seed int64, opts *ResetOptions) (Observation, Info, error) {
	if e.closed {
		return nil, Info{}, ErrClosed
	}
	if opts != nil {
		switch {
		case opts.Fuel < 0 || opts.Fuel > e.cfg.Params.FuelCapacity:
			return nil, Info{}, fmt.Errorf("%w: reset fuel %g outside [0, %g]",
				ErrInvalidConfiguration, opts.Fuel, e.cfg.Params.FuelCapacity)
		case opts.Altitude < 0:
			return nil, Info{}, fmt.Errorf("%w: reset altitude %g is negative",
				ErrInvalidConfiguration, opts.Altitude)
		}
	}
	if seed != 0 {
		e.rng = rand.New(rand.NewSource(seed))
	}
	e.reset(opts)
	return e.observe(), e.info(0), nil
}

func (e *Env) reset(opts *ResetOptions) {
	alt, x, fuel := e.cfg.StartAltitude, e.cfg.StartX, e.cfg.StartFuel
	if opts != nil {
		alt, x, fuel = opts.Altitude, opts.X, opts.Fuel
	}
	e.state = rocket.State{
		Position: rocket.Vec2{X: x, Y: alt},
		DryMass:  e.cfg.Params.DryMass,
		FuelMass: fuel,
	}
	if opts != nil && opts.Wind != nil {
		e.wind = *opts.Wind
	} else {
		e.wind = rocket.Vec2{X: (e.rng.Float64()*2 - 1) * e.cfg.WindMax}
	}
	e.phase = PhaseFlying
	e.reachedSpace = false
	e.airborne = alt > 0
	e.engineOn = false
	e.throttleSet = minThrottleSetting
}

// Step advances the episode by one fixed timestep. Out-of-range throttle
// and double RCS presses are corrected silently; a finished episode
// returns ErrEpisodeDone.
func (e *Env) Step(a rocket.Action) (StepResult, error) {
	if e.closed {
		return StepResult{}, ErrClosed
	}
	if e.phase.Done() {
		return StepResult{}, ErrEpisodeDone
	}
	a = a.Sanitize()

	// One-way liftoff latch. While the vehicle has never left the pad,
	// ground contact is rest, not touchdown: the launch itself would
	// otherwise read as a crash before the engine out-accelerates gravity.
	if e.state.Position.Y > 0 {
		e.airborne = true
	}

	// One gust draw per step, unconditionally, so the random stream
	// position depends only on the step count.
	gust := rocket.Vec2{X: e.rng.NormFloat64() * e.cfg.GustSigma}
	wind := e.wind.Add(gust)

	f := e.forces.Compute(e.state, a, wind, e.cfg.Dt)
	next, contact := e.integ.Step(e.state, f, e.cfg.Dt)

	// A non-finite state terminates immediately as a crash; the corrupted
	// state is discarded rather than propagated.
	if !next.IsValid() {
		e.phase = PhaseCrashed
		return StepResult{
			Obs:        e.observe(),
			Reward:     -e.cfg.Reward.CrashPenalty,
			Terminated: true,
			Info:       e.info(f.Throttle),
		}, nil
	}
	e.state = next

	reward := e.cfg.Reward.shaping(f.FuelBurned, next.Angle, next.Position.X)

	// One-way milestone latch, evaluated before the terminal conditions.
	if !e.reachedSpace && next.Altitude() > e.cfg.Params.SpaceAltitude {
		e.reachedSpace = true
		reward += e.cfg.Reward.SpaceBonus
	}

	var terminated, truncated bool
	var impactSpeed float64
	switch {
	case contact.Grounded && e.airborne:
		impactSpeed = contact.ImpactVelocity.Norm()
		if e.isSafeLanding(contact) {
			e.phase = PhaseLanded
			reward += e.cfg.Reward.LandedBonus
		} else {
			e.phase = PhaseCrashed
			reward -= e.cfg.Reward.CrashPenalty
		}
		terminated = true
	case next.TimeElapsed >= e.cfg.MaxEpisodeTime:
		e.phase = PhaseTimedOut
		reward += e.cfg.Reward.TimedOutPenalty
		truncated = true
	}

	info := e.info(f.Throttle)
	info.ImpactSpeed = impactSpeed

	return StepResult{
		Obs:        e.observe(),
		Reward:     reward,
		Terminated: terminated,
		Truncated:  truncated,
		Info:       info,
	}, nil
}

// isSafeLanding judges touchdown quality: gentle, upright, on the pad,
// and only after the vehicle has been to space at least once.
func (e *Env) isSafeLanding(c rocket.Contact) bool {
	if !e.reachedSpace {
		return false
	}
	if c.ImpactVelocity.Norm() >= e.cfg.SafeLandingSpeed {
		return false
	}
	angle := e.state.Angle
	if angle < 0 {
		angle = -angle
	}
	if angle >= e.cfg.SafeLandingAngle {
		return false
	}
	if e.cfg.PadHalfWidth > 0 {
		x := e.state.Position.X
		if x < 0 {
			x = -x
		}
		if x > e.cfg.PadHalfWidth {
			return false
		}
	}
	return true
}

func (e *Env) info(throttle float64) Info {
	return Info{
		Time:         e.state.TimeElapsed,
		Fuel:         e.state.FuelMass,
		Altitude:     e.state.Altitude(),
		Speed:        e.state.Speed(),
		Throttle:     throttle,
		Wind:         e.wind,
		Phase:        e.phase,
		ReachedSpace: e.reachedSpace,
	}
}

// Snapshot returns a copy of the current rocket state for renderers.
func (e *Env) Snapshot() rocket.State { return e.state }

// Phase returns the current episode phase.
func (e *Env) Phase() Phase { return e.phase }

// ReachedSpace reports the one-way space milestone latch.
func (e *Env) ReachedSpace() bool { return e.reachedSpace }

// Config returns the environment configuration.
func (e *Env) Config() Config { return e.cfg }

// Close releases resources. The physics core holds none, so this only
// marks the environment unusable; renderers own their own teardown.
func (e *Env) Close() error {
	e.closed = true
	return nil
}
