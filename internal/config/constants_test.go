package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultRefresh < MinRefresh {
		t.Fatalf("DefaultRefresh must not be below MinRefresh")
	}
	if DefaultHistory <= 0 || DefaultHistory > MaxHistory {
		t.Fatalf("DefaultHistory out of bounds: %d", DefaultHistory)
	}
	if AppName == "" || EnvPrefix == "" {
		t.Fatalf("AppName and EnvPrefix should not be empty")
	}
	if PrincipalCapacity <= 0 || SecondaryCapacity <= 0 {
		t.Fatalf("tank capacities must be positive")
	}
}

func TestLayoutConstants(t *testing.T) {
	if MinCardWidth > DefaultCardWidth {
		t.Fatalf("MinCardWidth must not exceed DefaultCardWidth")
	}
	if ChartRows < 2 {
		t.Fatalf("ChartRows must fit at least two tick rows")
	}
	if GaugeRows < 2 || GaugeInnerWidth < 4 {
		t.Fatalf("gauge container too small for a badge")
	}
}
