package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tankview/internal/widget"
	"github.com/charmbracelet/lipgloss"
)

const errorColor = "#ef4444"

func (m Model) View() string {
	f := m.Frame()
	parts := []string{
		m.renderHeader(),
		RenderFrame(f, m.width, m.cache),
		m.renderFooter(f),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Primary)).
		Bold(true).
		Render("TANKVIEW · Monitoreo de tanques")
	meta := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Render(fmt.Sprintf("  %s  %s  tema %s", VersionLabel(), m.last.At.Format(TimeLabel), m.theme.Name))
	return title + meta
}

func (m Model) renderFooter(f Frame) string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	lines := []string{StatusLine(f, m.theme)}
	if m.statusMessage != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
		if m.statusIsError {
			style = style.Foreground(lipgloss.Color(errorColor)).Bold(true)
		}
		lines = append(lines, style.Render(m.statusMessage))
	}
	lines = append(lines, muted.Render(m.help.View(m.keys)))
	return strings.Join(lines, "\n")
}

// StatusLine summarizes total flow, valve states and full tanks.
func StatusLine(f Frame, theme widget.Theme) string {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Fill)).Bold(true)
	off := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))

	parts := []string{text.Render(fmt.Sprintf("Flujo total: %.2f L/s", f.TotalFlow))}
	for i, open := range f.Open {
		label := fmt.Sprintf("V%d ○", i+1)
		style := off
		if open {
			label = fmt.Sprintf("V%d ●", i+1)
			style = on
		}
		parts = append(parts, style.Render(label))
	}
	if full := f.FullTanks(); len(full) > 0 {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.BadgeFg)).
			Background(lipgloss.Color(theme.BadgeBg)).
			Padding(0, 1).
			Render("LLENO")
		parts = append(parts, badge+" "+text.Render(strings.Join(full, ", ")))
	}
	return strings.Join(parts, "  ")
}
