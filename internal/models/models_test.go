package models

import (
	"math"
	"testing"
)

func TestValueFloat(t *testing.T) {
	if f, ok := Number(3.5).Float(); !ok || f != 3.5 {
		t.Fatalf("expected 3.5, got %v %v", f, ok)
	}
	if _, ok := Text("N/D").Float(); ok {
		t.Fatalf("expected text value to report non-numeric")
	}
	if _, ok := Number(math.NaN()).Float(); ok {
		t.Fatalf("expected NaN to report non-numeric")
	}
	if _, ok := Number(math.Inf(1)).Float(); ok {
		t.Fatalf("expected +Inf to report non-numeric")
	}
}

func TestSeriesPointValue(t *testing.T) {
	p := Point("10:00:00", "presion", Number(2))
	if v, ok := p.Value("presion"); !ok || v.Num != 2 {
		t.Fatalf("expected presion=2, got %+v %v", v, ok)
	}
	if _, ok := p.Value("flujo"); ok {
		t.Fatalf("expected missing field to report false")
	}
	var zero SeriesPoint
	if _, ok := zero.Value("presion"); ok {
		t.Fatalf("expected zero point to have no fields")
	}
}

func TestMissingFieldIsNotNumeric(t *testing.T) {
	v, found := Point("t1", "flujo", Number(1)).Value("presion")
	if found {
		t.Fatalf("expected presion to be absent")
	}
	if v.Kind != ValueMissing {
		t.Fatalf("expected ValueMissing, got %v", v.Kind)
	}
	if _, ok := v.Float(); ok {
		t.Fatalf("missing field must not report a number")
	}
	var zero Value
	if _, ok := zero.Float(); ok {
		t.Fatalf("zero Value must not report a number")
	}
}

func TestDefaultChartConfig(t *testing.T) {
	c := DefaultChartConfig("Válvula 1")
	if c.DataKey != "presion" || c.Unit != "PSI" || c.Label != "Valor" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Range.Min != 0 || c.Range.Max != 7 {
		t.Fatalf("unexpected default range: %+v", c.Range)
	}
}

func TestWithDefaultsKeepsExplicitFields(t *testing.T) {
	c := ChartConfig{Title: "A", Unit: "kPa", Range: Range{Min: 0, Max: 100}}.WithDefaults()
	if c.Unit != "kPa" || c.Range.Max != 100 {
		t.Fatalf("explicit fields overwritten: %+v", c)
	}
	if c.DataKey != DefaultDataKey || c.Color != DefaultChartColor {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestGaugeEffectiveCapacity(t *testing.T) {
	if got := (GaugeState{CurrentVolume: 10}).EffectiveCapacity(); got != DefaultCapacity {
		t.Fatalf("expected default capacity, got %v", got)
	}
	if got := (GaugeState{Capacity: 2000}).EffectiveCapacity(); got != 2000 {
		t.Fatalf("expected 2000, got %v", got)
	}
	if got := (GaugeState{Capacity: -5}).EffectiveCapacity(); got != -5 {
		t.Fatalf("negative capacity must be passed through for validation, got %v", got)
	}
}
