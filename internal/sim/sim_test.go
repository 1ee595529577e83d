package sim

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

var testCaps = Capacities{Principal: 2000, Secundario1: 1000, Secundario2: 1000}

func newTestSystem() *System {
	return New(testCaps, rand.New(rand.NewPCG(1, 2)))
}

func TestNewStartsMainFullSecondariesEmpty(t *testing.T) {
	s := newTestSystem()
	snap := s.Snapshot(time.Unix(0, 0))
	if snap.Levels[TankPrincipal] != 2000 {
		t.Fatalf("expected principal full, got %v", snap.Levels[TankPrincipal])
	}
	if snap.Levels[TankSecundario1] != 0 || snap.Levels[TankSecundario2] != 0 {
		t.Fatalf("expected secondaries empty, got %v", snap.Levels)
	}
	for i, open := range snap.Open {
		if open {
			t.Fatalf("valve %d should start closed", i+1)
		}
	}
}

func TestClosedValvesStayInLowBand(t *testing.T) {
	s := newTestSystem()
	var snap Snapshot
	for i := 0; i < 50; i++ {
		snap = s.Step(time.Now())
		for id, p := range snap.Pressures {
			if p < bandClosed.lo || p > bandClosed.hi {
				t.Fatalf("step %d valve %d pressure %v outside closed band", i, id+1, p)
			}
		}
	}
	if snap.TotalFlow != 0 {
		t.Fatalf("expected no flow with closed valves, got %v", snap.TotalFlow)
	}
	if snap.Levels[TankPrincipal] != 2000 {
		t.Fatalf("principal should not drain, got %v", snap.Levels[TankPrincipal])
	}
}

func TestOpenChainFillsSecondary(t *testing.T) {
	s := newTestSystem()
	if err := s.SetValve(1, true); err != nil {
		t.Fatalf("SetValve failed: %v", err)
	}
	if err := s.SetValve(2, true); err != nil {
		t.Fatalf("SetValve failed: %v", err)
	}

	snap := s.Step(time.Now())
	if snap.Levels[TankSecundario1] != baseFlow*stepSeconds {
		t.Fatalf("expected S1 at %v, got %v", baseFlow*stepSeconds, snap.Levels[TankSecundario1])
	}
	if snap.Levels[TankPrincipal] != 2000-baseFlow*stepSeconds {
		t.Fatalf("expected principal to drain, got %v", snap.Levels[TankPrincipal])
	}
	if snap.Levels[TankSecundario2] != 0 {
		t.Fatalf("S2 must stay empty with valve 3 closed")
	}
	if !snap.Flowing(1) || !snap.Flowing(2) || snap.Flowing(3) {
		t.Fatalf("unexpected flowing flags: %+v", snap.Flows)
	}
	if p := snap.Pressures[0]; p < bandFlowing.lo || p > bandFlowing.hi {
		t.Fatalf("valve 1 pressure %v outside flowing band", p)
	}
	if p := snap.Pressures[2]; p < bandClosed.lo || p > bandClosed.hi {
		t.Fatalf("valve 3 pressure %v outside closed band", p)
	}
}

func TestOpenValveWithoutFlowIsStagnant(t *testing.T) {
	s := newTestSystem()
	_ = s.SetValve(3, true)
	snap := s.Step(time.Now())
	if p := snap.Pressures[2]; p < bandStagnant.lo || p > bandStagnant.hi {
		t.Fatalf("valve 3 pressure %v outside stagnant band", p)
	}
}

func TestSecondaryStopsWhenFull(t *testing.T) {
	s := newTestSystem()
	_ = s.SetValve(1, true)
	_ = s.SetValve(2, true)

	var snap Snapshot
	for i := 0; i < 200; i++ {
		snap = s.Step(time.Now())
	}
	if snap.Levels[TankSecundario1] != 1000 {
		t.Fatalf("expected S1 full, got %v", snap.Levels[TankSecundario1])
	}
	if snap.Flowing(2) {
		t.Fatalf("flow must stop once S1 is full")
	}
	if snap.Levels[TankPrincipal] != 1000 {
		t.Fatalf("expected principal to have given exactly 1000 L, got %v", snap.Levels[TankPrincipal])
	}
}

func TestTankAdvanceClamps(t *testing.T) {
	tk := Tank{Capacity: 100, Level: 99, Inflow: 50}
	tk.advance(2)
	if tk.Level != 100 {
		t.Fatalf("expected clamp to capacity, got %v", tk.Level)
	}
	tk = Tank{Capacity: 100, Level: 3, Outflow: 10}
	tk.advance(2)
	if tk.Level != 0 {
		t.Fatalf("expected clamp to zero, got %v", tk.Level)
	}
}

func TestValveFlow(t *testing.T) {
	v := Valve{Pressure: 80, MaxFlow: 10}
	if v.Flow() != 0 {
		t.Fatalf("closed valve must not flow")
	}
	v.Open = true
	if v.Flow() != 8 {
		t.Fatalf("expected 8 L/s, got %v", v.Flow())
	}
}

func TestUnknownValve(t *testing.T) {
	s := newTestSystem()
	for _, id := range []int{0, 4, -1} {
		if err := s.SetValve(id, true); !errors.Is(err, ErrUnknownValve) {
			t.Fatalf("expected ErrUnknownValve for %d, got %v", id, err)
		}
	}
	open, err := s.ToggleValve(2)
	if err != nil || !open {
		t.Fatalf("expected valve 2 open, got %v %v", open, err)
	}
	v, err := s.Valve(2)
	if err != nil || !v.Open {
		t.Fatalf("Valve(2) = %+v, %v", v, err)
	}
}
