package widget

import (
	"math"
	"strings"

	"github.com/akyairhashvil/tankview/internal/config"
	"github.com/akyairhashvil/tankview/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Eighth-block glyphs, index = filled eighths.
var partialBlocks = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

const (
	gradientStart   = 0.05
	gradientEnd     = 0.95
	gradientOpacity = 0.8
)

// TermSurface paints widgets as lipgloss cards. Every call appends one block;
// the host lays the blocks out.
type TermSurface struct {
	theme     Theme
	width     int
	chartRows int
	gaugeRows int
	gaugeCols int
	blocks    []string
	ramps     map[string][]lipgloss.Color
}

// NewTermSurface creates a surface whose cards are width cells wide,
// borders included.
func NewTermSurface(theme Theme, width int) *TermSurface {
	if width < config.MinCardWidth {
		width = config.MinCardWidth
	}
	return &TermSurface{
		theme:     theme,
		width:     width,
		chartRows: config.ChartRows,
		gaugeRows: config.GaugeRows,
		gaugeCols: config.GaugeInnerWidth,
		ramps:     make(map[string][]lipgloss.Color),
	}
}

func (s *TermSurface) Blocks() []string { return s.blocks }

// String joins all painted blocks vertically.
func (s *TermSurface) String() string {
	return lipgloss.JoinVertical(lipgloss.Left, s.blocks...)
}

func (s *TermSurface) innerWidth() int { return s.width - 4 }

func (s *TermSurface) card(focused bool) lipgloss.Style {
	border := s.theme.Border
	if focused {
		border = s.theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(s.width - 2)
}

func (s *TermSurface) titleLine(title string) string {
	return s.theme.textStyle().Bold(true).Render(truncateLabel(title, s.innerWidth()))
}

func (s *TermSurface) Placeholder(title, notice string) {
	inner := s.innerWidth()
	body := lipgloss.Place(inner, config.PlaceholderRows, lipgloss.Center, lipgloss.Center,
		s.theme.mutedStyle().Render(truncateLabel(notice, inner)))
	s.blocks = append(s.blocks, s.card(false).Render(lipgloss.JoinVertical(lipgloss.Left, s.titleLine(title), body)))
}

func (s *TermSurface) AreaChart(v PanelView, opts RenderOptions) {
	inner := s.innerWidth()
	rows := s.chartRows
	muted := s.theme.mutedStyle()

	labels := make([]string, len(v.YTicks))
	labelW := 0
	for i, t := range v.YTicks {
		labels[i] = FormatTick(t)
		if w := ansi.StringWidth(labels[i]); w > labelW {
			labelW = w
		}
	}
	plotW := inner - labelW - 1
	if plotW < 1 {
		plotW = 1
	}

	tickRows := make(map[int]string, len(v.YTicks))
	for i, t := range v.YTicks {
		r := int(math.Round((1 - v.Level(t)) * float64(rows-1)))
		tickRows[r] = labels[i]
	}

	levels := columnLevels(v, plotW)
	tip, hasTip := v.Tooltip(opts.Hover)
	hoverCol := -1
	if hasTip {
		hoverCol = sampleColumn(opts.Hover, len(v.Samples), plotW)
	}

	ramp := s.ramp(v.GradientID, v.Color, rows)
	stroke := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color))
	grid := lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.Grid))

	lines := []string{s.titleLine(v.Title)}
	for r := 0; r < rows; r++ {
		var b strings.Builder
		label, isTick := tickRows[r]
		b.WriteString(muted.Render(padLeft(label, labelW)))
		if isTick {
			b.WriteString(muted.Render("┤"))
		} else {
			b.WriteString(muted.Render("│"))
		}
		fillStyle := lipgloss.NewStyle().Foreground(ramp[r])
		below := float64(rows-1-r) * 8
		for c := 0; c < plotW; c++ {
			glyph, top := areaCell(levels[c], below, rows, r == rows-1)
			switch {
			case glyph != " " && top:
				b.WriteString(stroke.Render(glyph))
			case glyph != " ":
				b.WriteString(fillStyle.Render(glyph))
			case c == hoverCol:
				b.WriteString(muted.Render("┊"))
			case isTick:
				b.WriteString(grid.Render("╌"))
			default:
				b.WriteByte(' ')
			}
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, muted.Render(strings.Repeat(" ", labelW)+"└"+strings.Repeat("─", plotW)))
	lines = append(lines, muted.Render(strings.Repeat(" ", labelW+1)+xAxisLabels(v.XTicks, plotW)))

	if hasTip {
		text := tip.Time + "  " + tip.Label + ": " + tip.Text
		tipStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.theme.Text)).
			Background(lipgloss.Color(s.theme.Card))
		lines = append(lines, tipStyle.Render(truncateLabel(text, inner)))
	}

	s.blocks = append(s.blocks, s.card(opts.Focused).Render(strings.Join(lines, "\n")))
}

func (s *TermSurface) Gauge(v GaugeView, opts RenderOptions) {
	inner := s.innerWidth()
	var parts []string
	if opts.Caption != "" {
		parts = append(parts, s.titleLine(opts.Caption))
	}
	readout := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.theme.Primary)).Render(v.Readout) +
		" " + s.theme.mutedStyle().Render(v.CapacityLabel)
	parts = append(parts,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, readout),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.tank(v)),
	)
	s.blocks = append(s.blocks, s.card(opts.Focused).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}

func (s *TermSurface) tank(v GaugeView) string {
	rows, cols := s.gaugeRows, s.gaugeCols
	liquid := lipgloss.NewStyle().Foreground(blend(s.theme.Card, s.theme.Fill, v.Opacity))
	badgeStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(s.theme.BadgeBg)).
		Foreground(lipgloss.Color(s.theme.BadgeFg)).
		Bold(true)

	badge := " " + v.Badge + " "
	if ansi.StringWidth(badge) > cols {
		badge = ansi.Truncate(badge, cols, "")
	}
	badgeW := ansi.StringWidth(badge)
	badgeRow := rows - 2
	if badgeRow < 0 {
		badgeRow = rows - 1
	}

	filled := fillEighths(v.FillRatio, rows)
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		n := filled - (rows-1-r)*8
		if n > 8 {
			n = 8
		}
		cell := " "
		if n > 0 {
			cell = liquid.Render(partialBlocks[n])
		}
		if r == badgeRow {
			left := (cols - badgeW) / 2
			lines[r] = strings.Repeat(cell, left) + badgeStyle.Render(badge) + strings.Repeat(cell, cols-badgeW-left)
			continue
		}
		lines[r] = strings.Repeat(cell, cols)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.theme.Border))
	return box.Render(strings.Join(lines, "\n"))
}

// ramp returns one color per chart row, fading from the series color to the
// card background. Ramps are cached by gradient identifier.
func (s *TermSurface) ramp(id, hex string, rows int) []lipgloss.Color {
	if r, ok := s.ramps[id]; ok && len(r) == rows {
		return r
	}
	out := make([]lipgloss.Color, rows)
	for r := range out {
		t := (float64(r) + 0.5) / float64(rows)
		out[r] = blend(s.theme.Card, hex, opacityAt(t))
	}
	s.ramps[id] = out
	return out
}

func opacityAt(t float64) float64 {
	switch {
	case t <= gradientStart:
		return gradientOpacity
	case t >= gradientEnd:
		return 0
	}
	return gradientOpacity * (gradientEnd - t) / (gradientEnd - gradientStart)
}

// blend mixes fg over bg at the given opacity.
func blend(bgHex, fgHex string, opacity float64) lipgloss.Color {
	bg, err := colorful.Hex(bgHex)
	if err != nil {
		bg = colorful.Color{}
	}
	fg, err := colorful.Hex(fgHex)
	if err != nil {
		fg, _ = colorful.Hex(models.DefaultChartColor)
	}
	return lipgloss.Color(bg.BlendRgb(fg, opacity).Clamped().Hex())
}

// fillEighths converts a ratio into filled eighth-cells of a rows-high column.
func fillEighths(ratio float64, rows int) int {
	return int(math.Round(ratio * float64(rows*8)))
}

// areaCell picks the glyph of one plot cell. below is the number of eighths
// under this row; top reports whether the cell carries the stroke.
func areaCell(level, below float64, rows int, bottom bool) (string, bool) {
	if level < 0 {
		return " ", false
	}
	h := level * float64(rows*8)
	fill := h - below
	switch {
	case fill > 8:
		return partialBlocks[8], false
	case fill > 0:
		n := int(math.Round(fill))
		if n < 1 {
			n = 1
		}
		return partialBlocks[n], true
	case bottom && h == 0:
		return partialBlocks[1], true
	}
	return " ", false
}

// columnLevels resamples the series onto width columns with linear
// interpolation. Gaps are reported as -1.
func columnLevels(v PanelView, width int) []float64 {
	n := len(v.Samples)
	out := make([]float64, width)
	for c := range out {
		pos := 0.0
		switch {
		case n > 1 && width > 1:
			pos = float64(c) * float64(n-1) / float64(width-1)
		case n > 1:
			pos = float64(n - 1)
		}
		i := int(math.Floor(pos))
		frac := pos - float64(i)
		a := v.Samples[i]
		if frac == 0 || i+1 >= n {
			if !a.OK {
				out[c] = -1
				continue
			}
			out[c] = v.Level(a.Y)
			continue
		}
		b := v.Samples[i+1]
		if !a.OK || !b.OK {
			out[c] = -1
			continue
		}
		out[c] = v.Level(a.Y + (b.Y-a.Y)*frac)
	}
	return out
}

func sampleColumn(i, n, width int) int {
	if n <= 1 || width <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(width-1) / float64(n-1)))
}

func xAxisLabels(ticks []string, width int) string {
	switch len(ticks) {
	case 0:
		return ""
	case 1:
		return truncateLabel(ticks[0], width)
	}
	left, right := ticks[0], ticks[len(ticks)-1]
	if ansi.StringWidth(left)+1+ansi.StringWidth(right) > width {
		half := (width - 1) / 2
		left, right = truncateLabel(left, half), truncateLabel(right, half)
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

func padLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
