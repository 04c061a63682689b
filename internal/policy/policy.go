// Package policy provides control policies that map observations to
// actions: a manual passthrough for interactive play, a seeded random
// policy for smoke-testing the environment, and a scripted descent
// policy that flies a complete mission.
package policy

import (
	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/rocket"
)

// Policy decides one action per step. Act receives both the normalized
// observation an RL agent would see and the raw state snapshot, so
// scripted policies can work in physical units.
type Policy interface {
	Act(obs env.Observation, s rocket.State) rocket.Action
	Reset()
}
