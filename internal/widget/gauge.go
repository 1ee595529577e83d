package widget

import (
	"errors"
	"math"
	"strconv"

	"github.com/akyairhashvil/tankview/internal/models"
)

var (
	ErrInvalidCapacity = errors.New("gauge capacity must be a positive number")
	ErrInvalidVolume   = errors.New("gauge volume must be a finite number")
)

// FillOpacity is the constant translucency of the tank liquid.
const FillOpacity = 0.6

// GaugeView is the view model of a level gauge.
type GaugeView struct {
	Volume        float64
	Capacity      float64
	Readout       string // volume rounded to litres
	CapacityLabel string // "/ 1000L"
	Percent       float64
	Badge         string // "75%"
	FillRatio     float64
	FillHeight    string // "75%" of the container
	Opacity       float64
	Invalid       bool
}

// Percentage returns volume/capacity as a percentage clamped to [0,100].
// Non-positive or non-finite capacities are rejected rather than producing
// NaN or out-of-bounds fills.
func Percentage(volume, capacity float64) (float64, error) {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 {
		return 0, ErrInvalidCapacity
	}
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return 0, ErrInvalidVolume
	}
	return math.Max(0, math.Min(100, volume/capacity*100)), nil
}

// BuildGauge computes the gauge view. On invalid input it still returns a
// drawable view (empty container, "--" badge) alongside the error.
func BuildGauge(state models.GaugeState) (GaugeView, error) {
	capacity := state.EffectiveCapacity()
	view := GaugeView{
		Volume:        state.CurrentVolume,
		Capacity:      capacity,
		Readout:       formatLitres(state.CurrentVolume),
		CapacityLabel: "/ " + strconv.FormatFloat(capacity, 'f', -1, 64) + "L",
		Opacity:       FillOpacity,
	}
	pct, err := Percentage(state.CurrentVolume, capacity)
	if err != nil {
		view.Invalid = true
		view.Badge = "--"
		view.FillHeight = "0%"
		return view, err
	}
	view.Percent = pct
	view.FillRatio = pct / 100
	view.Badge = strconv.FormatFloat(math.Round(pct), 'f', 0, 64) + "%"
	view.FillHeight = strconv.FormatFloat(pct, 'f', -1, 64) + "%"
	return view, nil
}

func formatLitres(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--"
	}
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
