package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TANKVIEW_CONFIG", "")

	c, err := Load(NewViper(), "")
	require.NoError(t, err)
	require.Equal(t, "default", c.UI.Theme)
	require.Equal(t, DefaultRefresh, c.UI.Refresh)
	require.Equal(t, DefaultHistory, c.UI.History)
	require.Equal(t, PressureChartMaxPSI, c.Chart.Max)
	require.Equal(t, "PSI", c.Chart.Unit)
	require.Equal(t, PrincipalCapacity, c.Tanks.Principal)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[ui]
theme = "dracula"
refresh = "500ms"
history = 10

[chart]
max = 7.0

[tanks]
principal = 3000.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := Load(NewViper(), path)
	require.NoError(t, err)
	require.Equal(t, "dracula", c.UI.Theme)
	require.Equal(t, 500*time.Millisecond, c.UI.Refresh)
	require.Equal(t, 10, c.UI.History)
	require.Equal(t, 7.0, c.Chart.Max)
	require.Equal(t, 3000.0, c.Tanks.Principal)
	require.Equal(t, SecondaryCapacity, c.Tanks.Secundario1)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TANKVIEW_CONFIG", "")
	t.Setenv("TANKVIEW_UI_THEME", "light")

	c, err := Load(NewViper(), "")
	require.NoError(t, err)
	require.Equal(t, "light", c.UI.Theme)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	c := Config{
		UI:    UIConfig{Refresh: time.Millisecond, History: MaxHistory + 1},
		Chart: ChartConfig{Min: 0, Max: 7},
		Tanks: TanksConfig{Principal: 1, Secundario1: 1, Secundario2: 1},
	}
	require.NoError(t, c.Normalize())
	require.Equal(t, MinRefresh, c.UI.Refresh)
	require.Equal(t, MaxHistory, c.UI.History)

	c.Chart = ChartConfig{Min: 7, Max: 0}
	if err := c.Normalize(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	c.Chart = ChartConfig{Min: 0, Max: 7}
	c.Tanks.Secundario2 = 0
	if err := c.Normalize(); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
}
