// Package sim is a demo data source for the dashboard: a main tank feeding
// two secondary tanks through three valves. Pressures are in kPa, levels
// in litres, flows in L/s.
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/akyairhashvil/tankview/internal/util"
)

var ErrUnknownValve = errors.New("unknown valve")

// Tank identifiers.
const (
	TankPrincipal   = "principal"
	TankSecundario1 = "secundario1"
	TankSecundario2 = "secundario2"
)

// TankOrder is the display order of the tanks.
var TankOrder = []string{TankPrincipal, TankSecundario1, TankSecundario2}

// ValveCount is the number of valves; ids run from 1 to ValveCount.
const ValveCount = 3

const (
	baseFlow     = 5.0
	stepSeconds  = 2.0
	valveMaxFlow = 10.0
	minFreeSpace = 1.0
	startPress   = 3.0
)

// pressureBand is the random walk applied to a valve in one state.
type pressureBand struct {
	lo, hi, step float64
}

var (
	bandFlowing  = pressureBand{lo: 75, hi: 85, step: 1.0}
	bandStagnant = pressureBand{lo: 15, hi: 25, step: 0.3}
	bandClosed   = pressureBand{lo: 2, hi: 8, step: 0.2}
)

type Valve struct {
	ID       int
	Pressure float64
	Open     bool
	MaxFlow  float64
}

// Flow is the nominal flow through the valve at its current pressure.
func (v Valve) Flow() float64 {
	if !v.Open {
		return 0
	}
	return v.Pressure / 100 * v.MaxFlow
}

func (v *Valve) updatePressure(rng *rand.Rand, flowing bool) {
	band := bandClosed
	switch {
	case v.Open && flowing:
		band = bandFlowing
	case v.Open:
		band = bandStagnant
	}
	delta := (rng.Float64()*2 - 1) * band.step
	v.Pressure = util.Clamp(v.Pressure+delta, band.lo, band.hi)
}

type Tank struct {
	Name     string
	Capacity float64
	Level    float64
	Inflow   float64
	Outflow  float64
}

// advance integrates dt seconds of flow. Inflow is limited by free space
// and the level never leaves [0, Capacity].
func (t *Tank) advance(dt float64) {
	space := t.Capacity - t.Level
	in := min(t.Inflow, space/dt)
	t.Level = util.Clamp(t.Level+(in-t.Outflow)*dt, 0, t.Capacity)
}

// Flows are the pipe segments of the network.
type Flows struct {
	PrincipalToV1 float64
	V1ToV2        float64
	V1ToV3        float64
	V2ToS1        float64
	V3ToS2        float64
}

func (f Flows) Total() float64 {
	return f.PrincipalToV1 + f.V1ToV2 + f.V1ToV3 + f.V2ToS1 + f.V3ToS2
}

// Capacities are tank sizes in litres.
type Capacities struct {
	Principal   float64
	Secundario1 float64
	Secundario2 float64
}

// Snapshot is one published reading of the network.
type Snapshot struct {
	At         time.Time
	Levels     map[string]float64
	Capacities map[string]float64
	Pressures  [ValveCount]float64 // kPa, valve i+1
	Open       [ValveCount]bool
	Flows      Flows
	TotalFlow  float64
}

// Flowing reports whether valve id carried flow in this snapshot.
func (s Snapshot) Flowing(id int) bool {
	switch id {
	case 1:
		return s.Flows.PrincipalToV1 > 0
	case 2:
		return s.Flows.V2ToS1 > 0
	case 3:
		return s.Flows.V3ToS2 > 0
	}
	return false
}

// System is the simulated network. It is not safe for concurrent use.
type System struct {
	valves [ValveCount]Valve
	tanks  map[string]*Tank
	rng    *rand.Rand
	flows  Flows
}

// New builds a network with the main tank full, the secondaries empty and
// every valve closed.
func New(caps Capacities, rng *rand.Rand) *System {
	s := &System{
		rng: rng,
		tanks: map[string]*Tank{
			TankPrincipal:   {Name: "Principal", Capacity: caps.Principal, Level: caps.Principal},
			TankSecundario1: {Name: "Secundario1", Capacity: caps.Secundario1},
			TankSecundario2: {Name: "Secundario2", Capacity: caps.Secundario2},
		},
	}
	for i := range s.valves {
		s.valves[i] = Valve{ID: i + 1, Pressure: startPress, MaxFlow: valveMaxFlow}
	}
	return s
}

// NewSeeded is New with a time-seeded PCG source.
func NewSeeded(caps Capacities) *System {
	seed := uint64(time.Now().UnixNano())
	return New(caps, rand.New(rand.NewPCG(seed, seed>>32)))
}

func (s *System) valve(id int) (*Valve, error) {
	if id < 1 || id > ValveCount {
		return nil, fmt.Errorf("valve %d: %w", id, ErrUnknownValve)
	}
	return &s.valves[id-1], nil
}

func (s *System) SetValve(id int, open bool) error {
	v, err := s.valve(id)
	if err != nil {
		return err
	}
	v.Open = open
	return nil
}

// ToggleValve flips valve id and returns its new state.
func (s *System) ToggleValve(id int) (bool, error) {
	v, err := s.valve(id)
	if err != nil {
		return false, err
	}
	v.Open = !v.Open
	return v.Open, nil
}

func (s *System) Valve(id int) (Valve, error) {
	v, err := s.valve(id)
	if err != nil {
		return Valve{}, err
	}
	return *v, nil
}

func (s *System) Tank(id string) (Tank, bool) {
	t, ok := s.tanks[id]
	if !ok {
		return Tank{}, false
	}
	return *t, true
}

// computeFlows routes base flow to a secondary only when its valve chain is
// open and it has room left.
func (s *System) computeFlows() Flows {
	s1, s2 := s.tanks[TankSecundario1], s.tanks[TankSecundario2]
	v1, v2, v3 := s.valves[0].Open, s.valves[1].Open, s.valves[2].Open

	var toS1, toS2 float64
	if v1 && v2 && s1.Capacity-s1.Level > minFreeSpace {
		toS1 = baseFlow
	}
	if v1 && v3 && s2.Capacity-s2.Level > minFreeSpace {
		toS2 = baseFlow
	}
	main := toS1 + toS2

	s.tanks[TankPrincipal].Outflow = main
	s1.Inflow = toS1
	s2.Inflow = toS2

	return Flows{
		PrincipalToV1: main,
		V1ToV2:        toS1,
		V1ToV3:        toS2,
		V2ToS1:        toS1,
		V3ToS2:        toS2,
	}
}

// Step advances the network by one period and returns the new reading.
func (s *System) Step(now time.Time) Snapshot {
	s.flows = s.computeFlows()
	s.valves[0].updatePressure(s.rng, s.flows.PrincipalToV1 > 0)
	s.valves[1].updatePressure(s.rng, s.flows.V2ToS1 > 0)
	s.valves[2].updatePressure(s.rng, s.flows.V3ToS2 > 0)
	for _, id := range TankOrder {
		s.tanks[id].advance(stepSeconds)
	}
	return s.Snapshot(now)
}

// Snapshot reads the current state without advancing it.
func (s *System) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		At:         now,
		Levels:     make(map[string]float64, len(s.tanks)),
		Capacities: make(map[string]float64, len(s.tanks)),
		Flows:      s.flows,
		TotalFlow:  util.RoundTo(s.flows.Total(), 2),
	}
	for id, t := range s.tanks {
		snap.Levels[id] = util.RoundTo(t.Level, 1)
		snap.Capacities[id] = t.Capacity
	}
	for i, v := range s.valves {
		snap.Pressures[i] = util.RoundTo(v.Pressure, 1)
		snap.Open[i] = v.Open
	}
	return snap
}
