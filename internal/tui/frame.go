package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/tankview/internal/config"
	"github.com/akyairhashvil/tankview/internal/models"
	"github.com/akyairhashvil/tankview/internal/sim"
	"github.com/akyairhashvil/tankview/internal/util"
	"github.com/akyairhashvil/tankview/internal/widget"
	"github.com/charmbracelet/lipgloss"
)

// PanelFrame is one pressure panel ready to draw.
type PanelFrame struct {
	Config models.ChartConfig
	Data   []models.SeriesPoint
}

// GaugeFrame is one tank gauge ready to draw.
type GaugeFrame struct {
	ID      string
	Caption string
	State   models.GaugeState
}

// Frame is everything one screen (or one report page) shows. Frames are
// values; they share nothing with the model that built them.
type Frame struct {
	At        time.Time
	Theme     widget.Theme
	Panels    []PanelFrame
	Gauges    []GaugeFrame
	Open      [sim.ValveCount]bool
	TotalFlow float64
	Focus     int
	Hover     int
}

var gaugeCaptions = map[string]string{
	sim.TankPrincipal:   "Tanque principal",
	sim.TankSecundario1: "Tanque secundario 1",
	sim.TankSecundario2: "Tanque secundario 2",
}

func valveTitle(id int) string { return fmt.Sprintf("Válvula %d", id) }

// panelConfig turns the chart section of the config into a widget config.
func panelConfig(c config.ChartConfig, title string) models.ChartConfig {
	return models.ChartConfig{
		Title:   title,
		DataKey: models.DefaultDataKey,
		Color:   c.Color,
		Unit:    c.Unit,
		Label:   c.Label,
		Range:   models.Range{Min: c.Min, Max: c.Max},
	}.WithDefaults()
}

// BuildFrame assembles a frame from the config, the pressure history and
// the latest snapshot.
func BuildFrame(cfg config.Config, theme widget.Theme, hist *History, snap sim.Snapshot) Frame {
	f := Frame{
		At:        snap.At,
		Theme:     theme,
		Open:      snap.Open,
		TotalFlow: snap.TotalFlow,
		Focus:     0,
		Hover:     widget.NoHover,
	}
	for i := 0; i < sim.ValveCount; i++ {
		f.Panels = append(f.Panels, PanelFrame{
			Config: panelConfig(cfg.Chart, valveTitle(i+1)),
			Data:   hist.Series(i),
		})
	}
	for _, id := range sim.TankOrder {
		f.Gauges = append(f.Gauges, GaugeFrame{
			ID:      id,
			Caption: gaugeCaptions[id],
			State:   models.GaugeState{CurrentVolume: snap.Levels[id], Capacity: snap.Capacities[id]},
		})
	}
	return f
}

// Cards is the number of focusable cards.
func (f Frame) Cards() int { return len(f.Panels) + len(f.Gauges) }

// FullTanks lists the captions of tanks at or above the full threshold.
func (f Frame) FullTanks() []string {
	var out []string
	for _, g := range f.Gauges {
		pct, err := widget.Percentage(g.State.CurrentVolume, g.State.EffectiveCapacity())
		if err != nil {
			continue
		}
		if pct >= config.FullThresholdPct {
			out = append(out, g.Caption)
		}
	}
	return out
}

func (f Frame) panelOptions(i int) widget.RenderOptions {
	opts := widget.DefaultOptions()
	if f.Focus == i {
		opts.Focused = true
		opts.Hover = f.Hover
	}
	return opts
}

func (f Frame) gaugeOptions(i int) widget.RenderOptions {
	opts := widget.DefaultOptions()
	opts.Focused = f.Focus == len(f.Panels)+i
	opts.Caption = f.Gauges[i].Caption
	return opts
}

// CardWidth splits the terminal width into Columns cards, or one full
// width card in compact mode.
func CardWidth(termWidth int) int {
	switch {
	case termWidth <= 0:
		return config.DefaultCardWidth
	case termWidth < config.CompactModeThreshold:
		return max(termWidth, config.MinCardWidth)
	default:
		return max(termWidth/config.Columns, config.MinCardWidth)
	}
}

// RenderFrame paints the frame on a terminal surface. Cards whose inputs
// did not change since the last call come from cache.
func RenderFrame(f Frame, termWidth int, cache *widget.RenderCache) string {
	width := CardWidth(termWidth)
	compact := termWidth > 0 && termWidth < config.CompactModeThreshold
	prefix := fmt.Sprintf("%s/%d/", f.Theme.Name, width)

	var cards []string
	for i, p := range f.Panels {
		opts := f.panelOptions(i)
		slot := fmt.Sprintf("%spanel%d", prefix, i)
		key := widget.PanelKey(p.Data, p.Config, opts)
		out, ok := cache.Get(slot, key)
		if !ok {
			s := widget.NewTermSurface(f.Theme, width)
			widget.RenderPanel(s, p.Data, p.Config, opts)
			out = s.String()
			cache.Put(slot, key, out)
		}
		cards = append(cards, out)
	}
	for i, g := range f.Gauges {
		opts := f.gaugeOptions(i)
		slot := fmt.Sprintf("%sgauge%d", prefix, i)
		key := widget.GaugeKey(g.State, opts)
		out, ok := cache.Get(slot, key)
		if !ok {
			s := widget.NewTermSurface(f.Theme, width)
			_, err := widget.RenderGauge(s, g.State, opts)
			util.LogError("render gauge "+g.ID, err)
			out = s.String()
			cache.Put(slot, key, out)
		}
		cards = append(cards, out)
	}

	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	var rows []string
	for start := 0; start < len(cards); start += config.Columns {
		end := min(start+config.Columns, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ExportReport writes the frame to a PDF at path.
func ExportReport(path string, f Frame) error {
	if path == "" {
		return wrapReportErr("export", path, ErrEmptyReportPath)
	}
	heading := fmt.Sprintf("%s %s", config.AppName, f.At.Format("2006-01-02 15:04:05"))
	s := widget.NewPDFSurface(f.Theme, heading)
	for i, p := range f.Panels {
		opts := widget.DefaultOptions()
		opts.Focused = f.Focus == i
		widget.RenderPanel(s, p.Data, p.Config, opts)
	}
	for i, g := range f.Gauges {
		_, err := widget.RenderGauge(s, g.State, f.gaugeOptions(i))
		util.LogError("report gauge "+g.ID, err)
	}
	return wrapReportErr("write", path, s.WriteFile(path))
}
