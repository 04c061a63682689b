package policy

import (
	"testing"

	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/rocket"
)

func emptyObs() env.Observation {
	return make(env.Observation, env.ObservationSize)
}

func TestManualPassthrough(t *testing.T) {
	m := NewManual()

	if a := m.Act(emptyObs(), rocket.State{}); a != (rocket.Action{}) {
		t.Errorf("fresh manual policy should be idle, got %+v", a)
	}

	want := rocket.Action{Throttle: 0.7, RCSLeft: true}
	m.Set(want)
	if a := m.Act(emptyObs(), rocket.State{}); a != want {
		t.Errorf("expected %+v, got %+v", want, a)
	}

	m.Reset()
	if a := m.Act(emptyObs(), rocket.State{}); a != (rocket.Action{}) {
		t.Errorf("reset should clear the action, got %+v", a)
	}
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	a := NewRandom(11)
	b := NewRandom(11)

	for i := 0; i < 100; i++ {
		if a.Act(emptyObs(), rocket.State{}) != b.Act(emptyObs(), rocket.State{}) {
			t.Fatalf("step %d: same seed should produce same actions", i)
		}
	}

	a.Reset()
	c := NewRandom(11)
	for i := 0; i < 10; i++ {
		if a.Act(emptyObs(), rocket.State{}) != c.Act(emptyObs(), rocket.State{}) {
			t.Fatalf("step %d: reset should rewind the stream", i)
		}
	}
}

func TestRandomActionsInSpace(t *testing.T) {
	r := NewRandom(5)
	for i := 0; i < 200; i++ {
		a := r.Act(emptyObs(), rocket.State{})
		if a.Throttle < 0 || a.Throttle > 1 {
			t.Fatalf("throttle %f out of range", a.Throttle)
		}
		if a.RCSLeft && a.RCSRight {
			t.Fatal("random policy emitted both RCS flags")
		}
	}
}

func TestDescentBurnsUntilSpace(t *testing.T) {
	p := rocket.DefaultParams()
	d := NewDescent(p)

	obs := emptyObs()
	s := rocket.State{DryMass: p.DryMass, FuelMass: p.FuelCapacity}

	a := d.Act(obs, s)
	if a.Throttle != 1 {
		t.Errorf("expected full throttle during ascent, got %f", a.Throttle)
	}
}

func TestDescentCoastsAfterMilestone(t *testing.T) {
	p := rocket.DefaultParams()
	d := NewDescent(p)

	obs := emptyObs()
	obs[env.ObsReachedSpace] = 1
	s := rocket.State{
		DryMass:  p.DryMass,
		Position: rocket.Vec2{Y: 120000},
		Velocity: rocket.Vec2{Y: 300}, // still coasting up
	}

	if a := d.Act(obs, s); a.Throttle != 0 {
		t.Errorf("should coast while climbing, got throttle %f", a.Throttle)
	}
}

func TestDescentBrakesWhenFallingFast(t *testing.T) {
	p := rocket.DefaultParams()
	d := NewDescent(p)

	obs := emptyObs()
	obs[env.ObsReachedSpace] = 1
	s := rocket.State{
		DryMass:  p.DryMass,
		FuelMass: 5000,
		Position: rocket.Vec2{Y: 500},
		Velocity: rocket.Vec2{Y: -200},
	}

	a := d.Act(obs, s)
	if a.Throttle <= 0 || a.Throttle > 1 {
		t.Errorf("expected braking throttle in (0,1], got %f", a.Throttle)
	}
}

func TestDescentCorrectsAttitude(t *testing.T) {
	p := rocket.DefaultParams()
	d := NewDescent(p)

	s := rocket.State{DryMass: p.DryMass, Angle: 0.3}
	a := d.Act(emptyObs(), s)
	if !a.RCSLeft || a.RCSRight {
		t.Errorf("positive tilt should fire left RCS, got %+v", a)
	}

	s.Angle = -0.3
	a = d.Act(emptyObs(), s)
	if !a.RCSRight || a.RCSLeft {
		t.Errorf("negative tilt should fire right RCS, got %+v", a)
	}

	s.Angle = 0.001
	s.AngularVel = 0
	a = d.Act(emptyObs(), s)
	if a.RCSLeft || a.RCSRight {
		t.Errorf("tiny tilt inside deadband should stay quiet, got %+v", a)
	}
}
