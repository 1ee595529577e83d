package testutil

import (
	"slices"
	"time"

	"github.com/akyairhashvil/tankview/internal/models"
	"github.com/akyairhashvil/tankview/internal/sim"
)

// SeriesBuilder provides fluent API for creating test series.
type SeriesBuilder struct {
	key    string
	at     time.Time
	step   time.Duration
	layout string
	points []models.SeriesPoint
}

func NewSeries() *SeriesBuilder {
	return &SeriesBuilder{
		key:    models.DefaultDataKey,
		at:     time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		step:   2 * time.Second,
		layout: "15:04:05",
	}
}

func (b *SeriesBuilder) WithKey(k string) *SeriesBuilder {
	b.key = k
	return b
}

func (b *SeriesBuilder) WithStart(t time.Time) *SeriesBuilder {
	b.at = t
	return b
}

func (b *SeriesBuilder) WithStep(d time.Duration) *SeriesBuilder {
	b.step = d
	return b
}

func (b *SeriesBuilder) next() string {
	label := b.at.Format(b.layout)
	b.at = b.at.Add(b.step)
	return label
}

// Values appends one numeric point per value.
func (b *SeriesBuilder) Values(vs ...float64) *SeriesBuilder {
	for _, v := range vs {
		b.points = append(b.points, models.Point(b.next(), b.key, models.Number(v)))
	}
	return b
}

// Text appends a point whose value is already formatted.
func (b *SeriesBuilder) Text(s string) *SeriesBuilder {
	b.points = append(b.points, models.Point(b.next(), b.key, models.Text(s)))
	return b
}

// Gap appends a point that lacks the data key.
func (b *SeriesBuilder) Gap() *SeriesBuilder {
	b.points = append(b.points, models.SeriesPoint{Time: b.next(), Fields: map[string]models.Value{}})
	return b
}

func (b *SeriesBuilder) Build() []models.SeriesPoint {
	return slices.Clone(b.points)
}

// GaugeBuilder provides fluent API for creating test gauge states.
type GaugeBuilder struct {
	state models.GaugeState
}

func NewGauge() *GaugeBuilder {
	return &GaugeBuilder{state: models.GaugeState{Capacity: models.DefaultCapacity}}
}

func (b *GaugeBuilder) WithVolume(v float64) *GaugeBuilder {
	b.state.CurrentVolume = v
	return b
}

func (b *GaugeBuilder) WithCapacity(c float64) *GaugeBuilder {
	b.state.Capacity = c
	return b
}

func (b *GaugeBuilder) Build() models.GaugeState {
	return b.state
}

// SnapshotBuilder provides fluent API for creating simulator readings.
type SnapshotBuilder struct {
	snap sim.Snapshot
}

// NewSnapshot starts from the initial network: main tank full,
// secondaries empty, valves closed at 3 kPa.
func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{
		snap: sim.Snapshot{
			At: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
			Levels: map[string]float64{
				sim.TankPrincipal:   2000,
				sim.TankSecundario1: 0,
				sim.TankSecundario2: 0,
			},
			Capacities: map[string]float64{
				sim.TankPrincipal:   2000,
				sim.TankSecundario1: 1000,
				sim.TankSecundario2: 1000,
			},
			Pressures: [sim.ValveCount]float64{3, 3, 3},
		},
	}
}

func (b *SnapshotBuilder) At(t time.Time) *SnapshotBuilder {
	b.snap.At = t
	return b
}

func (b *SnapshotBuilder) WithLevel(tank string, litres float64) *SnapshotBuilder {
	b.snap.Levels[tank] = litres
	return b
}

// WithPressure sets valve id (1-based) in kPa.
func (b *SnapshotBuilder) WithPressure(id int, kpa float64) *SnapshotBuilder {
	b.snap.Pressures[id-1] = kpa
	return b
}

func (b *SnapshotBuilder) WithOpen(id int) *SnapshotBuilder {
	b.snap.Open[id-1] = true
	return b
}

func (b *SnapshotBuilder) WithTotalFlow(f float64) *SnapshotBuilder {
	b.snap.TotalFlow = f
	return b
}

func (b *SnapshotBuilder) Build() sim.Snapshot {
	return b.snap
}
