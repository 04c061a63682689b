package env

import "math"

// BoxSpace describes a fixed-size continuous space with per-dimension
// bounds. Descriptors are static for the process lifetime.
type BoxSpace struct {
	Low  []float64
	High []float64
}

func (b BoxSpace) Size() int { return len(b.Low) }

func (b BoxSpace) Contains(v []float64) bool {
	if len(v) != len(b.Low) {
		return false
	}
	for i := range v {
		if v[i] < b.Low[i] || v[i] > b.High[i] {
			return false
		}
	}
	return true
}

// DiscreteSpace describes an integer action space {0, ..., N-1}.
type DiscreteSpace struct {
	N int
}

func (d DiscreteSpace) Contains(i int) bool { return i >= 0 && i < d.N }

// ActionSpace returns the continuous action bounds:
// throttle in [0,1] plus the two RCS flags as {0,1}.
func ActionSpace() BoxSpace {
	return BoxSpace{
		Low:  []float64{0, 0, 0},
		High: []float64{1, 1, 1},
	}
}

// DiscreteActions returns the discrete action space used by StepDiscrete.
func DiscreteActions() DiscreteSpace {
	return DiscreteSpace{N: numDiscreteActions}
}

// ObservationSpace returns the bounds of the normalized observation
// vector. Position and velocity components are unbounded; fractions and
// flags live in [0,1] and the normalized angle in [-1,1].
func ObservationSpace() BoxSpace {
	inf := math.Inf(1)
	return BoxSpace{
		Low:  []float64{-inf, 0, -inf, -inf, -1, -inf, 0, 0, 0},
		High: []float64{inf, inf, inf, inf, 1, inf, 1, 1, 1},
	}
}
