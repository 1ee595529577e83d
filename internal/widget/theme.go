package widget

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme carries the color tokens the widgets paint with. Colors are hex
// strings so both the terminal and the PDF surface can consume them.
type Theme struct {
	Name    string
	Card    string // panel background
	Border  string
	Text    string
	Muted   string
	Primary string
	Fill    string // tank liquid
	BadgeBg string
	BadgeFg string
	Grid    string
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Card:    "#1c1c1c",
		Border:  "#3a3a3a",
		Text:    "#e4e4e4",
		Muted:   "#808080",
		Primary: "#5f87ff",
		Fill:    "#3b82f6",
		BadgeBg: "#e4e4e4",
		BadgeFg: "#1c1c1c",
		Grid:    "#303030",
	},
	"dracula": {
		Name:    "Dracula",
		Card:    "#282a36",
		Border:  "#44475a",
		Text:    "#f8f8f2",
		Muted:   "#6272a4",
		Primary: "#bd93f9",
		Fill:    "#8be9fd",
		BadgeBg: "#ff79c6",
		BadgeFg: "#282a36",
		Grid:    "#383a4a",
	},
	"light": {
		Name:    "Light",
		Card:    "#ffffff",
		Border:  "#e2e8f0",
		Text:    "#0f172a",
		Muted:   "#64748b",
		Primary: "#0f172a",
		Fill:    "#3b82f6",
		BadgeBg: "#0f172a",
		BadgeFg: "#f8fafc",
		Grid:    "#eef2f6",
	},
}

// DefaultTheme is used when a configured theme name is unknown.
const DefaultTheme = "default"

// ResolveTheme returns the named theme, falling back to DefaultTheme.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[DefaultTheme]
}

// ThemeNames lists theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for k := range Themes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (t Theme) color(hex string) lipgloss.Color { return lipgloss.Color(hex) }

func (t Theme) textStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color(t.Text))
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color(t.Muted))
}
