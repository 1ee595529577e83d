// Package tui is the live tank dashboard: three valve pressure panels and
// three tank gauges fed by the simulator.
package tui

import (
	"time"

	"github.com/akyairhashvil/tankview/internal/config"
	"github.com/akyairhashvil/tankview/internal/sim"
	"github.com/akyairhashvil/tankview/internal/widget"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

type reportDoneMsg struct {
	path string
	err  error
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// --- Model ---
type Model struct {
	cfg           config.Config
	sys           *sim.System
	hist          *History
	cache         *widget.RenderCache
	keys          keyMap
	help          help.Model
	themeKey      string
	theme         widget.Theme
	last          sim.Snapshot
	focus         int
	hover         int
	statusMessage string
	statusIsError bool
	width, height int
	now           func() time.Time
}

// NewModel builds the dashboard on top of sys. The history starts empty so
// panels show their placeholder until the first tick.
func NewModel(cfg config.Config, sys *sim.System) Model {
	m := Model{
		cfg:   cfg,
		sys:   sys,
		hist:  NewHistory(cfg.UI.History),
		cache: widget.NewRenderCache(),
		keys:  newKeyMap(),
		help:  help.New(),
		hover: widget.NoHover,
		now:   time.Now,
	}
	m.setTheme(cfg.UI.Theme)
	m.last = sys.Snapshot(m.now())
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.UI.Refresh)
}

func (m *Model) setTheme(name string) {
	if _, ok := widget.Themes[name]; !ok {
		name = widget.DefaultTheme
	}
	m.themeKey = name
	m.theme = widget.ResolveTheme(name)
	m.cache.Invalidate()
}

// Frame is the current screen as a value, safe to hand to another goroutine.
func (m Model) Frame() Frame {
	f := BuildFrame(m.cfg, m.theme, m.hist, m.last)
	f.Focus = m.focus
	f.Hover = m.hover
	return f
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMessage = msg
	m.statusIsError = isErr
}
