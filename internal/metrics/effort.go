package metrics

import (
	"math"

	"github.com/san-kum/rocketsim/internal/rocket"
)

// ThrottleEffort is the mean commanded throttle over the episode, a
// proxy for how hard the policy worked the main engine.
type ThrottleEffort struct {
	sum     float64
	samples int
}

func NewThrottleEffort() *ThrottleEffort {
	return &ThrottleEffort{}
}

func (m *ThrottleEffort) Name() string { return "throttle_effort" }

func (m *ThrottleEffort) Observe(s rocket.State, a rocket.Action, reward float64) {
	m.sum += a.Throttle
	m.samples++
}

func (m *ThrottleEffort) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *ThrottleEffort) Reset() {
	m.sum = 0
	m.samples = 0
}

// AttitudeStability is the fraction of steps the vehicle held its angle
// inside the threshold. 1.0 means it never tipped past it.
type AttitudeStability struct {
	threshold  float64
	violations int
	samples    int
}

func NewAttitudeStability(threshold float64) *AttitudeStability {
	return &AttitudeStability{threshold: threshold}
}

func (m *AttitudeStability) Name() string { return "attitude_stability" }

func (m *AttitudeStability) Observe(s rocket.State, a rocket.Action, reward float64) {
	m.samples++
	if math.Abs(s.Angle) > m.threshold {
		m.violations++
	}
}

func (m *AttitudeStability) Value() float64 {
	if m.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(m.violations)/float64(m.samples)
}

func (m *AttitudeStability) Reset() {
	m.violations = 0
	m.samples = 0
}
