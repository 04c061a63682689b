// Package runner orchestrates complete episodes: it wires a policy to an
// environment, collects the trajectory and metrics, and runs seeded
// batches of episodes in parallel.
package runner

import (
	"context"

	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/metrics"
	"github.com/san-kum/rocketsim/internal/policy"
	"github.com/san-kum/rocketsim/internal/rocket"
)

// Result is the record of one finished episode.
type Result struct {
	Seed         int64
	Steps        int
	Duration     float64 // simulated seconds
	Phase        env.Phase
	ReachedSpace bool
	TotalReward  float64

	States  []rocket.State
	Rewards []float64
	Times   []float64

	Metrics map[string]float64
}

// RunEpisode resets the environment with the given seed and steps the
// policy until the episode terminates or truncates. The environment
// enforces its own time limit, so the loop always ends.
func RunEpisode(ctx context.Context, e *env.Env, pol policy.Policy, seed int64, ms []metrics.Metric) (*Result, error) {
	obs, _, err := e.Reset(seed, nil)
	if err != nil {
		return nil, err
	}
	pol.Reset()
	for _, m := range ms {
		m.Reset()
	}

	result := &Result{
		Seed:    seed,
		States:  []rocket.State{e.Snapshot()},
		Times:   []float64{0},
		Metrics: make(map[string]float64),
	}
	for _, m := range ms {
		m.Observe(e.Snapshot(), rocket.Action{}, 0)
	}

	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		a := pol.Act(obs, e.Snapshot())
		res, err := e.Step(a)
		if err != nil {
			return nil, err
		}

		s := e.Snapshot()
		for _, m := range ms {
			m.Observe(s, a, res.Reward)
		}
		if res.Info.ImpactSpeed > 0 {
			for _, m := range ms {
				if io, ok := m.(metrics.ImpactObserver); ok {
					io.ObserveImpact(res.Info.ImpactSpeed)
				}
			}
		}

		result.Steps++
		result.TotalReward += res.Reward
		result.States = append(result.States, s)
		result.Rewards = append(result.Rewards, res.Reward)
		result.Times = append(result.Times, s.TimeElapsed)

		obs = res.Obs
		if res.Terminated || res.Truncated {
			break
		}
	}

	result.Duration = e.Snapshot().TimeElapsed
	result.Phase = e.Phase()
	result.ReachedSpace = e.ReachedSpace()
	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
