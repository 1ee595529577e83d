package widget

import (
	"math"

	"github.com/akyairhashvil/tankview/internal/models"
	"github.com/cespare/xxhash/v2"
)

// RenderPanel builds the panel view and paints it. The chart path is only
// taken for non-empty series.
func RenderPanel(s Surface, data []models.SeriesPoint, cfg models.ChartConfig, opts RenderOptions) PanelView {
	view := BuildPanel(data, cfg)
	if view.Placeholder {
		s.Placeholder(view.Title, view.Notice)
		return view
	}
	s.AreaChart(view, opts)
	return view
}

// RenderGauge builds the gauge view and paints it, even when the input is
// invalid; the error is returned for the caller to report.
func RenderGauge(s Surface, state models.GaugeState, opts RenderOptions) (GaugeView, error) {
	view, err := BuildGauge(state)
	s.Gauge(view, opts)
	return view, err
}

// PanelKey fingerprints the inputs of a panel render. Hosts use it to skip
// repainting when inputs did not change.
func PanelKey(data []models.SeriesPoint, cfg models.ChartConfig, opts RenderOptions) uint64 {
	d := xxhash.New()
	writeString(d, cfg.Title)
	writeString(d, cfg.DataKey)
	writeString(d, cfg.Color)
	writeString(d, cfg.Unit)
	writeString(d, cfg.Label)
	writeFloat(d, cfg.Range.Min)
	writeFloat(d, cfg.Range.Max)
	writeOpts(d, opts)
	for _, p := range data {
		writeString(d, p.Time)
		v, _ := p.Value(cfg.DataKey)
		writeFloat(d, float64(v.Kind))
		writeFloat(d, v.Num)
		writeString(d, v.Text)
	}
	return d.Sum64()
}

// GaugeKey fingerprints the inputs of a gauge render.
func GaugeKey(state models.GaugeState, opts RenderOptions) uint64 {
	d := xxhash.New()
	writeFloat(d, state.CurrentVolume)
	writeFloat(d, state.Capacity)
	writeOpts(d, opts)
	return d.Sum64()
}

func writeOpts(d *xxhash.Digest, opts RenderOptions) {
	writeFloat(d, float64(opts.Hover))
	if opts.Focused {
		writeFloat(d, 1)
	} else {
		writeFloat(d, 0)
	}
	writeString(d, opts.Caption)
}

func writeString(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0})
}

func writeFloat(d *xxhash.Digest, f float64) {
	var b [8]byte
	u := math.Float64bits(f)
	for i := range b {
		b[i] = byte(u >> (8 * i))
	}
	_, _ = d.Write(b[:])
}

// RenderCache memoizes rendered output per slot. It is not safe for
// concurrent use; each host keeps its own.
type RenderCache struct {
	entries map[string]cacheEntry
}

type cacheEntry struct {
	key uint64
	out string
}

func NewRenderCache() *RenderCache {
	return &RenderCache{entries: make(map[string]cacheEntry)}
}

// Get returns the cached output of slot if it was rendered from key.
func (c *RenderCache) Get(slot string, key uint64) (string, bool) {
	e, ok := c.entries[slot]
	if !ok || e.key != key {
		return "", false
	}
	return e.out, true
}

func (c *RenderCache) Put(slot string, key uint64, out string) {
	c.entries[slot] = cacheEntry{key: key, out: out}
}

// Invalidate drops every entry, e.g. after a theme or size change.
func (c *RenderCache) Invalidate() {
	c.entries = make(map[string]cacheEntry)
}
