package env

import (
	"fmt"

	"github.com/san-kum/rocketsim/internal/rocket"
)

// Discrete actions for agents and keyboard play. The throttle is a
// latched console: up turns the engine on and ramps the setting, down
// ramps it toward the minimum stable setting, cutoff shuts the engine
// off entirely.
const (
	ActionNoop = iota
	ActionThrottleUp
	ActionThrottleDown
	ActionRCSLeft
	ActionRCSRight
	ActionCutoff

	numDiscreteActions
)

// Throttle console behavior. The main engine cannot run stably below 30%.
const (
	minThrottleSetting = 0.3
	throttleUpRate     = 1.5 // setting fraction per second
	throttleDownRate   = 2.0
)

// StepDiscrete maps a discrete action onto the continuous triple and
// steps the environment. Unlike continuous throttle, an unrecognized
// discrete action is an error, not something to silently reinterpret.
func (e *Env) StepDiscrete(action int) (StepResult, error) {
	if !DiscreteActions().Contains(action) {
		return StepResult{}, fmt.Errorf("%w: discrete action %d not in [0, %d)",
			ErrInvalidAction, action, numDiscreteActions)
	}

	var a rocket.Action
	switch action {
	case ActionThrottleUp:
		e.engineOn = true
		e.throttleSet += throttleUpRate * e.cfg.Dt
		if e.throttleSet > 1 {
			e.throttleSet = 1
		}
	case ActionThrottleDown:
		if e.engineOn {
			e.throttleSet -= throttleDownRate * e.cfg.Dt
			if e.throttleSet < minThrottleSetting {
				e.throttleSet = minThrottleSetting
			}
		}
	case ActionRCSLeft:
		a.RCSLeft = true
	case ActionRCSRight:
		a.RCSRight = true
	case ActionCutoff:
		e.engineOn = false
		e.throttleSet = minThrottleSetting
	}

	if e.engineOn {
		a.Throttle = e.throttleSet
	}
	return e.Step(a)
}

// ThrottleSetting exposes the discrete-mode console state for display.
func (e *Env) ThrottleSetting() (setting float64, engineOn bool) {
	return e.throttleSet, e.engineOn
}
