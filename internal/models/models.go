package models

import (
	"math"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// ValueMissing is the zero Value: the field was absent.
	ValueMissing ValueKind = iota
	ValueNumber
	ValueText
)

// Value is a single field of a series point. Series fields are usually
// numeric but upstream feeds occasionally send strings ("N/D", "--").
type Value struct {
	Kind ValueKind
	Num  float64
	Text string
}

func Number(f float64) Value { return Value{Kind: ValueNumber, Num: f} }

func Text(s string) Value { return Value{Kind: ValueText, Text: s} }

// Float returns the numeric payload. Non-finite numbers report false so they
// are drawn as gaps.
func (v Value) Float() (float64, bool) {
	if v.Kind != ValueNumber {
		return 0, false
	}
	if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
		return 0, false
	}
	return v.Num, true
}

// SeriesPoint is one sample of a displayed time series.
type SeriesPoint struct {
	Time   string
	Fields map[string]Value
}

// Point builds a single-field sample.
func Point(time, key string, v Value) SeriesPoint {
	return SeriesPoint{Time: time, Fields: map[string]Value{key: v}}
}

// Value returns the field stored under key. An absent field comes back as
// the zero Value, which is ValueMissing.
func (p SeriesPoint) Value(key string) (Value, bool) {
	if p.Fields == nil {
		return Value{}, false
	}
	v, ok := p.Fields[key]
	return v, ok
}

// Range is a fixed axis domain.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// ChartConfig is the per-instance configuration of a time series panel.
type ChartConfig struct {
	Title   string
	DataKey string
	Color   string // hex, e.g. #8884d8
	Unit    string
	Label   string
	Range   Range
}

// Chart defaults.
const (
	DefaultChartColor = "#8884d8"
	DefaultDataKey    = "presion"
	DefaultUnit       = "PSI"
	DefaultLabel      = "Valor"
	DefaultRangeMin   = 0
	DefaultRangeMax   = 7
)

func DefaultChartConfig(title string) ChartConfig {
	return ChartConfig{
		Title:   title,
		DataKey: DefaultDataKey,
		Color:   DefaultChartColor,
		Unit:    DefaultUnit,
		Label:   DefaultLabel,
		Range:   Range{Min: DefaultRangeMin, Max: DefaultRangeMax},
	}
}

// WithDefaults fills empty fields with the chart defaults. A zero range is
// treated as unset.
func (c ChartConfig) WithDefaults() ChartConfig {
	d := DefaultChartConfig(c.Title)
	if strings.TrimSpace(c.DataKey) == "" {
		c.DataKey = d.DataKey
	}
	if strings.TrimSpace(c.Color) == "" {
		c.Color = d.Color
	}
	if c.Unit == "" {
		c.Unit = d.Unit
	}
	if c.Label == "" {
		c.Label = d.Label
	}
	if c.Range == (Range{}) {
		c.Range = d.Range
	}
	return c
}

// DefaultCapacity is used when a gauge is built without a capacity.
const DefaultCapacity = 1000.0

// GaugeState is the input of a level gauge, in litres.
type GaugeState struct {
	CurrentVolume float64
	Capacity      float64
}

func Gauge(volume float64) GaugeState {
	return GaugeState{CurrentVolume: volume, Capacity: DefaultCapacity}
}

// EffectiveCapacity returns Capacity, or DefaultCapacity when unset.
func (g GaugeState) EffectiveCapacity() float64 {
	if g.Capacity == 0 {
		return DefaultCapacity
	}
	return g.Capacity
}
