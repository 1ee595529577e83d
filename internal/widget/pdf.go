package widget

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/lucasb-eyer/go-colorful"
)

// Page layout in millimetres. A gauge container is 80x150 px at 4 px/mm.
const (
	pdfMargin       = 10.0
	pdfHeadingH     = 12.0
	pdfGap          = 5.0
	pdfColumns      = 3
	pdfChartH       = 48.0
	pdfPlaceholderH = 30.0
	pdfGaugeH       = 64.0
	pdfTankW        = 20.0
	pdfTankH        = 37.5
	pdfBadgeH       = 4.5
	pdfBadgeBottom  = 4.0
)

// PDFSurface paints widgets as vector cards on A4 pages, three per row.
type PDFSurface struct {
	pdf   *fpdf.Fpdf
	theme Theme
	tr    func(string) string
	cardW float64
	y     float64
	rowH  float64
	col   int
}

func NewPDFSurface(theme Theme, heading string) *PDFSurface {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTitle(heading, true)

	pageW, _ := pdf.GetPageSize()
	s := &PDFSurface{
		pdf:   pdf,
		theme: theme,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		cardW: (pageW - 2*pdfMargin - (pdfColumns-1)*pdfGap) / pdfColumns,
	}
	s.newPage()

	pdf.SetFont("Arial", "B", 14)
	s.setText(theme.Text)
	pdf.Text(pdfMargin, pdfMargin+6, s.tr(heading))
	s.y = pdfMargin + pdfHeadingH
	return s
}

func (s *PDFSurface) newPage() {
	s.pdf.AddPage()
	w, h := s.pdf.GetPageSize()
	s.setFill(s.theme.Card)
	s.pdf.Rect(0, 0, w, h, "F")
	s.y = pdfMargin
	s.col = 0
	s.rowH = 0
}

// place reserves a card slot of height h and returns its origin.
func (s *PDFSurface) place(h float64) (float64, float64) {
	if s.col == pdfColumns {
		s.y += s.rowH + pdfGap
		s.col, s.rowH = 0, 0
	}
	_, pageH := s.pdf.GetPageSize()
	if s.y+h > pageH-pdfMargin {
		s.newPage()
	}
	x := pdfMargin + float64(s.col)*(s.cardW+pdfGap)
	s.col++
	if h > s.rowH {
		s.rowH = h
	}
	return x, s.y
}

func (s *PDFSurface) card(x, y, h float64, focused bool) {
	border := s.theme.Border
	if focused {
		border = s.theme.Primary
	}
	s.setDraw(border)
	s.setFill(s.theme.Card)
	s.pdf.SetLineWidth(0.3)
	s.pdf.RoundedRect(x, y, s.cardW, h, 2, "1234", "DF")
}

func (s *PDFSurface) title(x, y float64, text string) {
	s.pdf.SetFont("Arial", "B", 8)
	s.setText(s.theme.Text)
	s.pdf.Text(x+3, y+5, s.tr(text))
}

func (s *PDFSurface) Placeholder(title, notice string) {
	x, y := s.place(pdfPlaceholderH)
	s.card(x, y, pdfPlaceholderH, false)
	s.title(x, y, title)
	s.pdf.SetFont("Arial", "", 8)
	s.setText(s.theme.Muted)
	s.pdf.SetXY(x, y+pdfPlaceholderH/2)
	s.pdf.CellFormat(s.cardW, 5, s.tr(notice), "", 0, "C", false, 0, "")
}

func (s *PDFSurface) AreaChart(v PanelView, opts RenderOptions) {
	x, y := s.place(pdfChartH)
	s.card(x, y, pdfChartH, opts.Focused)
	s.title(x, y, v.Title)

	px, py := x+12, y+9
	pw, ph := s.cardW-15, pdfChartH-20
	base := py + ph

	s.pdf.SetFont("Arial", "", 6)
	s.setText(s.theme.Muted)
	s.setDraw(s.theme.Grid)
	s.pdf.SetLineWidth(0.2)
	s.pdf.SetDashPattern([]float64{0.8, 0.8}, 0)
	for _, t := range v.YTicks {
		ty := py + ph*(1-v.Level(t))
		s.pdf.Line(px, ty, px+pw, ty)
		label := FormatTick(t)
		s.pdf.Text(px-1.5-s.pdf.GetStringWidth(label), ty+1, label)
	}
	s.pdf.SetDashPattern([]float64{}, 0)

	top := hexRGB(blendHex(s.theme.Card, v.Color, gradientOpacity))
	bottom := hexRGB(s.theme.Card)
	for _, seg := range segments(v, px, pw, py, ph) {
		poly := make([]fpdf.PointType, 0, len(seg)+2)
		poly = append(poly, fpdf.PointType{X: seg[0].X, Y: base})
		poly = append(poly, seg...)
		poly = append(poly, fpdf.PointType{X: seg[len(seg)-1].X, Y: base})
		s.pdf.ClipPolygon(poly, false)
		s.pdf.LinearGradient(px, py, pw, ph,
			top[0], top[1], top[2], bottom[0], bottom[1], bottom[2],
			0, 1-gradientStart, 0, 1-gradientEnd)
		s.pdf.ClipEnd()

		s.setDraw(v.Color)
		s.pdf.SetLineWidth(0.4)
		for i := 1; i < len(seg); i++ {
			s.pdf.Line(seg[i-1].X, seg[i-1].Y, seg[i].X, seg[i].Y)
		}
	}

	s.setDraw(s.theme.Muted)
	s.pdf.SetLineWidth(0.2)
	s.pdf.Line(px, base, px+pw, base)
	if len(v.XTicks) > 0 {
		s.pdf.Text(px, base+4, s.tr(v.XTicks[0]))
	}
	if len(v.XTicks) > 1 {
		last := s.tr(v.XTicks[len(v.XTicks)-1])
		s.pdf.Text(px+pw-s.pdf.GetStringWidth(last), base+4, last)
	}

	if tip, ok := v.Tooltip(opts.Hover); ok {
		s.pdf.SetFont("Arial", "", 7)
		s.setText(s.theme.Text)
		s.pdf.Text(x+3, y+pdfChartH-2.5, s.tr(tip.Time+"  "+tip.Label+": "+tip.Text))
	}
}

func (s *PDFSurface) Gauge(v GaugeView, opts RenderOptions) {
	x, y := s.place(pdfGaugeH)
	s.card(x, y, pdfGaugeH, opts.Focused)
	if opts.Caption != "" {
		s.title(x, y, opts.Caption)
	}

	s.pdf.SetFont("Arial", "B", 10)
	readoutW := s.pdf.GetStringWidth(v.Readout)
	s.pdf.SetFont("Arial", "", 7)
	labelW := s.pdf.GetStringWidth(v.CapacityLabel)
	start := x + (s.cardW-(readoutW+1.5+labelW))/2
	s.pdf.SetFont("Arial", "B", 10)
	s.setText(s.theme.Primary)
	s.pdf.Text(start, y+13, v.Readout)
	s.pdf.SetFont("Arial", "", 7)
	s.setText(s.theme.Muted)
	s.pdf.Text(start+readoutW+1.5, y+13, v.CapacityLabel)

	cx, cy := x+(s.cardW-pdfTankW)/2, y+17
	if fh := pdfTankH * v.FillRatio; fh > 0 {
		s.pdf.SetAlpha(v.Opacity, "Normal")
		s.setFill(s.theme.Fill)
		s.pdf.Rect(cx, cy+pdfTankH-fh, pdfTankW, fh, "F")
		s.pdf.SetAlpha(1, "Normal")
	}
	s.setDraw(s.theme.Border)
	s.pdf.SetLineWidth(0.5)
	s.pdf.RoundedRect(cx, cy, pdfTankW, pdfTankH, 1.5, "1234", "D")

	s.pdf.SetFont("Arial", "B", 7)
	bw := s.pdf.GetStringWidth(v.Badge) + 3
	bx, by := cx+(pdfTankW-bw)/2, cy+pdfTankH-pdfBadgeBottom-pdfBadgeH
	s.setFill(s.theme.BadgeBg)
	s.pdf.RoundedRect(bx, by, bw, pdfBadgeH, 1.5, "1234", "F")
	s.setText(s.theme.BadgeFg)
	s.pdf.Text(bx+1.5, by+pdfBadgeH-1.2, v.Badge)
}

// Output writes the document to w.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, creating parent directories.
func (s *PDFSurface) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir report dir: %w", err)
	}
	if err := s.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (s *PDFSurface) PageCount() int { return s.pdf.PageCount() }

func (s *PDFSurface) setText(hex string) {
	c := hexRGB(hex)
	s.pdf.SetTextColor(c[0], c[1], c[2])
}

func (s *PDFSurface) setDraw(hex string) {
	c := hexRGB(hex)
	s.pdf.SetDrawColor(c[0], c[1], c[2])
}

func (s *PDFSurface) setFill(hex string) {
	c := hexRGB(hex)
	s.pdf.SetFillColor(c[0], c[1], c[2])
}

// segments splits the series at gaps and projects each run onto the plot
// box. A single-sample run spans the full width.
func segments(v PanelView, px, pw, py, ph float64) [][]fpdf.PointType {
	n := len(v.Samples)
	xAt := func(i int) float64 {
		if n <= 1 {
			return px
		}
		return px + pw*float64(i)/float64(n-1)
	}
	var out [][]fpdf.PointType
	var cur []fpdf.PointType
	for i, smp := range v.Samples {
		if !smp.OK {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, fpdf.PointType{X: xAt(i), Y: py + ph*(1-v.Level(smp.Y))})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	for i, seg := range out {
		if len(seg) == 1 {
			p := seg[0]
			if n <= 1 {
				out[i] = []fpdf.PointType{{X: px, Y: p.Y}, {X: px + pw, Y: p.Y}}
			} else {
				out[i] = []fpdf.PointType{{X: p.X - 0.4, Y: p.Y}, {X: p.X + 0.4, Y: p.Y}}
			}
		}
	}
	return out
}

func hexRGB(hex string) [3]int {
	c, err := colorful.Hex(hex)
	if err != nil {
		return [3]int{0, 0, 0}
	}
	r, g, b := c.RGB255()
	return [3]int{int(r), int(g), int(b)}
}

func blendHex(bg, fg string, opacity float64) string {
	return string(blend(bg, fg, opacity))
}
