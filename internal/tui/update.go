package tui

import (
	"fmt"
	"slices"

	"github.com/akyairhashvil/tankview/internal/config"
	"github.com/akyairhashvil/tankview/internal/sim"
	"github.com/akyairhashvil/tankview/internal/util"
	"github.com/akyairhashvil/tankview/internal/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.cache.Invalidate()
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case reportDoneMsg:
		return m.handleReportDone(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	m.last = m.sys.Step(m.now())
	m.hist.Push(m.last)
	return m, tickCmd(m.cfg.UI.Refresh)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Clear transient messages on keypress
	m.statusMessage, m.statusIsError = "", false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Left):
		m.moveHover(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveHover(1)
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Report):
		m.setStatus("Generando informe...", false)
		return m, m.reportCmd()
	default:
		if id := m.keys.valve(msg); id > 0 {
			m.toggleValve(id)
		}
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	cards := sim.ValveCount + len(sim.TankOrder)
	m.focus = ((m.focus+delta)%cards + cards) % cards
	m.hover = widget.NoHover
}

// moveHover walks the tooltip cursor over the focused panel's samples.
func (m *Model) moveHover(delta int) {
	if m.focus >= sim.ValveCount {
		return
	}
	n := m.hist.Len()
	if n == 0 {
		m.hover = widget.NoHover
		return
	}
	switch {
	case m.hover == widget.NoHover && delta < 0:
		m.hover = n - 1
	case m.hover == widget.NoHover:
		m.hover = 0
	default:
		m.hover = util.Clamp(m.hover+delta, 0, n-1)
	}
}

func (m *Model) cycleTheme() {
	names := widget.ThemeNames()
	i := slices.Index(names, m.themeKey)
	m.setTheme(names[(i+1)%len(names)])
	m.setStatus("Tema: "+m.theme.Name, false)
}

func (m *Model) toggleValve(id int) {
	open, err := m.sys.ToggleValve(id)
	if err != nil {
		err = wrapValveErr("toggle", id, err)
		util.LogError("toggle valve", err)
		m.setStatus(err.Error(), true)
		return
	}
	m.last = m.sys.Snapshot(m.now())
	state := "cerrada"
	if open {
		state = "abierta"
	}
	m.setStatus(fmt.Sprintf("%s %s", valveTitle(id), state), false)
}

func (m Model) reportCmd() tea.Cmd {
	f := m.Frame()
	path := util.ReportPath(m.cfg.Report.Dir, config.AppName, m.now())
	return func() tea.Msg {
		return reportDoneMsg{path: path, err: ExportReport(path, f)}
	}
}

func (m Model) handleReportDone(msg reportDoneMsg) Model {
	if msg.err != nil {
		util.LogError("export report", msg.err)
		m.setStatus(fmt.Sprintf("Error al generar el informe: %v", msg.err), true)
		return m
	}
	m.setStatus("Informe guardado en "+msg.path, false)
	return m
}
