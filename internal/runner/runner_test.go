package runner

import (
	"context"
	"testing"

	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/metrics"
	"github.com/san-kum/rocketsim/internal/policy"
)

func testConfig() env.Config {
	cfg := env.DefaultConfig()
	cfg.MaxEpisodeTime = 30
	return cfg
}

func TestRunEpisodeCompletes(t *testing.T) {
	e, err := env.New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := RunEpisode(context.Background(), e, policy.NewRandom(4), 17, metrics.Defaults())
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}

	if !result.Phase.Done() {
		t.Errorf("episode should end in a done phase, got %v", result.Phase)
	}
	if result.Steps == 0 {
		t.Error("episode recorded zero steps")
	}
	if len(result.States) != result.Steps+1 {
		t.Errorf("expected %d states, got %d", result.Steps+1, len(result.States))
	}
	if len(result.Rewards) != result.Steps {
		t.Errorf("expected %d rewards, got %d", result.Steps, len(result.Rewards))
	}
	if _, ok := result.Metrics["fuel_used"]; !ok {
		t.Error("expected fuel_used metric in result")
	}
}

func TestRunEpisodeReproducible(t *testing.T) {
	run := func() *Result {
		e, err := env.New(testConfig())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		r, err := RunEpisode(context.Background(), e, policy.NewRandom(9), 23, metrics.Defaults())
		if err != nil {
			t.Fatalf("RunEpisode: %v", err)
		}
		return r
	}

	a, b := run(), run()
	if a.Steps != b.Steps || a.TotalReward != b.TotalReward || a.Phase != b.Phase {
		t.Errorf("same seed should reproduce the episode: %+v vs %+v", a, b)
	}
	for i := range a.States {
		if a.States[i] != b.States[i] {
			t.Fatalf("state %d differs between runs", i)
		}
	}
}

func TestRunEpisodeRecordsImpactSpeed(t *testing.T) {
	// Unpowered drop from 50 m: the ground clamp zeroes the state's
	// vertical velocity on touchdown, so the recorded metric must come
	// from the pre-clamp impact, roughly sqrt(2g·h) ≈ 31 m/s.
	cfg := testConfig()
	cfg.StartAltitude = 50
	cfg.WindMax = 0
	cfg.GustSigma = 0
	e, err := env.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := RunEpisode(context.Background(), e, policy.NewManual(), 3, metrics.Defaults())
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}

	if result.Phase != env.PhaseCrashed {
		t.Fatalf("free fall should crash, got %v", result.Phase)
	}
	speed := result.Metrics["touchdown_speed"]
	if speed < 25 || speed > 40 {
		t.Errorf("expected impact speed near 31 m/s, got %f", speed)
	}
}

func TestRunEpisodeContextCancel(t *testing.T) {
	e, err := env.New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := RunEpisode(ctx, e, policy.NewRandom(1), 1, nil); err == nil {
		t.Error("expected context error, got nil")
	}
}

func TestBatchRunsAllSeeds(t *testing.T) {
	b := NewBatch(testConfig(), 4, 100, func() policy.Policy { return policy.NewRandom(2) })

	results, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil", i)
		}
		if r.Seed != 100+int64(i) {
			t.Errorf("result %d: expected seed %d, got %d", i, 100+i, r.Seed)
		}
		if !r.Phase.Done() {
			t.Errorf("result %d: episode not done: %v", i, r.Phase)
		}
	}
}

func TestBatchMatchesSingleEpisode(t *testing.T) {
	b := NewBatch(testConfig(), 2, 50, func() policy.Policy { return policy.NewRandom(8) })
	results, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	cfg := testConfig()
	cfg.Seed = 50
	e, err := env.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	single, err := RunEpisode(context.Background(), e, policy.NewRandom(8), 50, metrics.Defaults())
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}

	if results[0].TotalReward != single.TotalReward || results[0].Steps != single.Steps {
		t.Error("batch episode should match an identically seeded single episode")
	}
}
