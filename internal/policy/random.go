package policy

import (
	"math/rand"

	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/rocket"
)

// Random samples uniformly from the action space. Deterministic for a
// given seed, which keeps environment smoke-tests reproducible.
type Random struct {
	seed int64
	rng  *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Act(obs env.Observation, s rocket.State) rocket.Action {
	a := rocket.Action{Throttle: r.rng.Float64()}
	switch r.rng.Intn(3) {
	case 0:
		a.RCSLeft = true
	case 1:
		a.RCSRight = true
	}
	return a
}

// Reset rewinds the random stream to the seed, so replays match.
func (r *Random) Reset() {
	r.rng = rand.New(rand.NewSource(r.seed))
}
