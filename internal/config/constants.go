package config

import "time"

// Application settings.
const (
	AppName        = "tankview"
	ConfigFileName = "config"
	EnvPrefix      = "TANKVIEW"
	LogFileName    = "tankview.log"
)

// Refresh and history.
const (
	DefaultRefresh = 2 * time.Second
	MinRefresh     = 100 * time.Millisecond
	DefaultHistory = 30
	MaxHistory     = 600
)

// Tank capacities in litres.
const (
	PrincipalCapacity   = 2000.0
	SecondaryCapacity   = 1000.0
	FullThresholdPct    = 99.0
	PressureChartMaxPSI = 15.0
)
