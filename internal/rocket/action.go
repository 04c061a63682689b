package rocket

// Action is the control input for one timestep: a continuous main-engine
// throttle plus two reaction-control flags. At most one RCS flag should
// be set; callers that receive both set treat the pair as neither.
type Action struct {
	Throttle float64 // main engine, [0, 1]
	RCSLeft  bool    // torque toward negative angle
	RCSRight bool    // torque toward positive angle
}

// Sanitize clamps the throttle into [0, 1] and drops mutually-exclusive
// RCS presses. This is the documented lenient policy: out-of-range
// continuous inputs are corrected silently, never rejected.
func (a Action) Sanitize() Action {
	if a.Throttle < 0 {
		a.Throttle = 0
	} else if a.Throttle > 1 {
		a.Throttle = 1
	}
	if a.RCSLeft && a.RCSRight {
		a.RCSLeft = false
		a.RCSRight = false
	}
	return a
}
