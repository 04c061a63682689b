package policy

import (
	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/rocket"
)

// Manual passes an externally set action through to the environment.
// The manual-play loop owns the keyboard and the frame timing; it maps
// key state to an Action, stores it here, and steps the environment at
// its own fixed rate.
type Manual struct {
	current rocket.Action
}

func NewManual() *Manual {
	return &Manual{}
}

// Set replaces the action returned by subsequent Act calls.
func (m *Manual) Set(a rocket.Action) {
	m.current = a
}

func (m *Manual) Act(obs env.Observation, s rocket.State) rocket.Action {
	return m.current
}

func (m *Manual) Reset() {
	m.current = rocket.Action{}
}
