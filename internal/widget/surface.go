// Package widget builds the view models of the dashboard indicators (the
// pressure panel and the tank gauge) and paints them onto a Surface.
//
// Building is pure: the same inputs always produce the same view. Painting is
// delegated to a Surface, which owns every drawing concern (cards, axes,
// gradients, glyphs or PDF primitives).
package widget

//go:generate mockgen -destination=mock_surface_test.go -package=widget github.com/akyairhashvil/tankview/internal/widget Surface

// Surface is the drawing backend. Implementations must not retain the views
// they are handed beyond the call.
type Surface interface {
	Placeholder(title, notice string)
	AreaChart(view PanelView, opts RenderOptions)
	Gauge(view GaugeView, opts RenderOptions)
}

// RenderOptions are per-frame hints from the host. They never change the
// view model, only how a surface decorates it.
type RenderOptions struct {
	Hover   int // sample index under the cursor, -1 for none
	Focused bool
	Caption string
}

// NoHover is the Hover value for "no sample selected".
const NoHover = -1

func DefaultOptions() RenderOptions { return RenderOptions{Hover: NoHover} }
