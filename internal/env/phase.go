package env

// Phase is the episode state machine. Flying is the only non-terminal
// phase; reaching space is a one-way latch on the episode, not a phase,
// because the episode continues until landing, crash, or timeout.
type Phase int

const (
	PhaseFlying Phase = iota
	PhaseLanded
	PhaseCrashed
	PhaseTimedOut
)

func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "flying"
	case PhaseLanded:
		return "landed"
	case PhaseCrashed:
		return "crashed"
	case PhaseTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Terminal reports whether the episode ended due to the environment's own
// success/failure condition. TimedOut is truncation, not termination.
func (p Phase) Terminal() bool {
	return p == PhaseLanded || p == PhaseCrashed
}

// Done reports whether the episode is over for any reason.
func (p Phase) Done() bool {
	return p != PhaseFlying
}
