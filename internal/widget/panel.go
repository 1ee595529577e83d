package widget

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/akyairhashvil/tankview/internal/models"
)

// NoDataNotice is shown instead of a chart when the series is empty.
const NoDataNotice = "No hay datos suficientes"

const yTickCount = 3

// Sample is one plotted point. OK is false for gaps (missing or non-numeric
// field).
type Sample struct {
	Time  string
	Value models.Value
	Y     float64
	OK    bool
}

// PanelView is the view model of a time series panel.
type PanelView struct {
	Title       string
	Placeholder bool
	Notice      string

	GradientID string
	Color      string
	Unit       string
	Label      string
	Range      models.Range
	XTicks     []string
	YTicks     []float64
	Samples    []Sample
}

// Tooltip is the hover readout for one sample.
type Tooltip struct {
	Time  string
	Label string
	Text  string
}

// BuildPanel turns caller data into a panel view. It never fails: an empty or
// nil series yields the placeholder view.
func BuildPanel(data []models.SeriesPoint, cfg models.ChartConfig) PanelView {
	if len(data) == 0 {
		return PanelView{Title: cfg.Title, Placeholder: true, Notice: NoDataNotice}
	}
	cfg = cfg.WithDefaults()

	samples := make([]Sample, len(data))
	for i, p := range data {
		v, found := p.Value(cfg.DataKey)
		y, ok := v.Float()
		samples[i] = Sample{Time: p.Time, Value: v, Y: y, OK: ok && found}
	}

	return PanelView{
		Title:      cfg.Title,
		GradientID: GradientID(cfg.Title, cfg.DataKey),
		Color:      cfg.Color,
		Unit:       cfg.Unit,
		Label:      cfg.Label,
		Range:      cfg.Range,
		XTicks:     xTicks(data),
		YTicks:     yTicks(cfg.Range, yTickCount),
		Samples:    samples,
	}
}

// GradientID scopes the fill gradient of one panel. Whitespace is stripped
// from the title so "Presión A" and "PresiónA" share an identifier.
func GradientID(title, dataKey string) string {
	var b strings.Builder
	b.WriteString("color")
	for _, r := range title {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	b.WriteString(dataKey)
	return b.String()
}

// MissingValue is the tooltip text of a point without the data key.
const MissingValue = "--"

// FormatValue renders a tooltip value with its unit. Numbers get one decimal;
// text values pass through unchanged. A missing value has no unit.
func FormatValue(v models.Value, unit string) string {
	var shown string
	switch v.Kind {
	case models.ValueMissing:
		return MissingValue
	case models.ValueNumber:
		shown = strconv.FormatFloat(v.Num, 'f', 1, 64)
	default:
		shown = v.Text
	}
	if unit == "" {
		return shown
	}
	return shown + " " + unit
}

// Tooltip returns the readout for sample i.
func (v PanelView) Tooltip(i int) (Tooltip, bool) {
	if v.Placeholder || i < 0 || i >= len(v.Samples) {
		return Tooltip{}, false
	}
	s := v.Samples[i]
	return Tooltip{Time: s.Time, Label: v.Label, Text: FormatValue(s.Value, v.Unit)}, true
}

// Level maps y onto [0,1] of the panel range, clamping outliers to the
// bounds. A swapped range is normalized; an empty one maps everything to 0.
func (v PanelView) Level(y float64) float64 {
	lo, hi := v.Range.Min, v.Range.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == lo {
		return 0
	}
	f := (y - lo) / (hi - lo)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// FormatTick renders an axis tick value.
func FormatTick(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Only the first and last labels are shown on the time axis.
func xTicks(data []models.SeriesPoint) []string {
	if len(data) == 1 {
		return []string{data[0].Time}
	}
	return []string{data[0].Time, data[len(data)-1].Time}
}

func yTicks(r models.Range, n int) []float64 {
	if n < 2 {
		return []float64{r.Min}
	}
	ticks := make([]float64, n)
	step := r.Span() / float64(n-1)
	for i := range ticks {
		ticks[i] = r.Min + step*float64(i)
	}
	ticks[n-1] = r.Max
	return ticks
}
