// Package metrics provides per-episode summary metrics. Each metric
// observes every step of an episode and reduces it to a single number
// for run summaries and batch tables.
package metrics

import "github.com/san-kum/rocketsim/internal/rocket"

type Metric interface {
	Name() string
	Observe(s rocket.State, a rocket.Action, reward float64)
	Value() float64
	Reset()
}

// FuelUsed measures fuel consumed between the first and last observed
// state of the episode.
type FuelUsed struct {
	first, last float64
	samples     int
}

func NewFuelUsed() *FuelUsed { return &FuelUsed{} }

func (m *FuelUsed) Name() string { return "fuel_used" }

func (m *FuelUsed) Observe(s rocket.State, a rocket.Action, reward float64) {
	if m.samples == 0 {
		m.first = s.FuelMass
	}
	m.last = s.FuelMass
	m.samples++
}

func (m *FuelUsed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.first - m.last
}

func (m *FuelUsed) Reset() {
	m.first, m.last, m.samples = 0, 0, 0
}

// Apogee tracks the highest altitude reached.
type Apogee struct {
	max float64
}

func NewApogee() *Apogee { return &Apogee{} }

func (m *Apogee) Name() string { return "apogee" }

func (m *Apogee) Observe(s rocket.State, a rocket.Action, reward float64) {
	if s.Altitude() > m.max {
		m.max = s.Altitude()
	}
}

func (m *Apogee) Value() float64 { return m.max }

func (m *Apogee) Reset() { m.max = 0 }

// ImpactObserver is implemented by metrics that need the pre-clamp
// touchdown speed. The ground clamp zeroes the state's vertical velocity,
// so the impact cannot be reconstructed from observed states; the runner
// feeds it in when the environment reports a terminal touchdown.
type ImpactObserver interface {
	ObserveImpact(speed float64)
}

// TouchdownSpeed records the pre-clamp speed of the terminal touchdown,
// zero if the episode never touched down.
type TouchdownSpeed struct {
	speed float64
}

func NewTouchdownSpeed() *TouchdownSpeed { return &TouchdownSpeed{} }

func (m *TouchdownSpeed) Name() string { return "touchdown_speed" }

func (m *TouchdownSpeed) Observe(s rocket.State, a rocket.Action, reward float64) {}

func (m *TouchdownSpeed) ObserveImpact(speed float64) { m.speed = speed }

func (m *TouchdownSpeed) Value() float64 { return m.speed }

func (m *TouchdownSpeed) Reset() { m.speed = 0 }

// TotalReward accumulates the episode return.
type TotalReward struct {
	sum float64
}

func NewTotalReward() *TotalReward { return &TotalReward{} }

func (m *TotalReward) Name() string { return "total_reward" }

func (m *TotalReward) Observe(s rocket.State, a rocket.Action, reward float64) {
	m.sum += reward
}

func (m *TotalReward) Value() float64 { return m.sum }

func (m *TotalReward) Reset() { m.sum = 0 }

// Defaults returns the standard metric set for episode runs.
func Defaults() []Metric {
	return []Metric{
		NewFuelUsed(), NewApogee(), NewTouchdownSpeed(), NewTotalReward(),
		NewThrottleEffort(), NewAttitudeStability(0.5),
	}
}
