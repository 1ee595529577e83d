package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/tankview/internal/util"
	"github.com/spf13/viper"
)

var (
	ErrInvalidRange    = errors.New("chart.min must be lower than chart.max")
	ErrInvalidCapacity = errors.New("tank capacities must be positive")
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Chart  ChartConfig
	Tanks  TanksConfig
	Report ReportConfig
	Log    LogConfig
}

// UIConfig holds dashboard settings.
type UIConfig struct {
	Theme   string
	Refresh time.Duration
	History int
}

// ChartConfig holds the pressure panel defaults.
type ChartConfig struct {
	Min   float64
	Max   float64
	Unit  string
	Label string
	Color string
}

// TanksConfig holds tank capacities in litres.
type TanksConfig struct {
	Principal   float64
	Secundario1 float64
	Secundario2 float64
}

type ReportConfig struct {
	Dir string
}

type LogConfig struct {
	Path string
}

// NewViper returns a viper instance with defaults and env overrides
// (prefix TANKVIEW_, dots become underscores).
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.refresh", DefaultRefresh)
	v.SetDefault("ui.history", DefaultHistory)
	v.SetDefault("chart.min", 0.0)
	v.SetDefault("chart.max", PressureChartMaxPSI)
	v.SetDefault("chart.unit", "PSI")
	v.SetDefault("chart.label", "Presión")
	v.SetDefault("chart.color", "#8884d8")
	v.SetDefault("tanks.principal", PrincipalCapacity)
	v.SetDefault("tanks.secundario1", SecondaryCapacity)
	v.SetDefault("tanks.secundario2", SecondaryCapacity)
	v.SetDefault("report.dir", util.ReportsDir(AppName))
	v.SetDefault("log.path", filepath.Join(util.DataDir(AppName), LogFileName))

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads the config file into v and decodes it. path wins over
// $TANKVIEW_CONFIG, which wins over ~/.config/tankview/config.toml. A missing
// default file is not an error; a missing explicit file is.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", AppName))
		}
		v.SetConfigName(ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Normalize clamps soft limits and rejects settings the widgets cannot draw.
func (c *Config) Normalize() error {
	if c.UI.Refresh < MinRefresh {
		c.UI.Refresh = MinRefresh
	}
	if c.UI.History <= 0 {
		c.UI.History = DefaultHistory
	}
	if c.UI.History > MaxHistory {
		c.UI.History = MaxHistory
	}
	if c.Chart.Min >= c.Chart.Max {
		return ErrInvalidRange
	}
	if c.Tanks.Principal <= 0 || c.Tanks.Secundario1 <= 0 || c.Tanks.Secundario2 <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}
