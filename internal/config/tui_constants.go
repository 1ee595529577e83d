package config

// Card layout.
const (
	// ChartRows is the plot height of a pressure panel.
	ChartRows = 5

	// PlaceholderRows is the body height of an empty panel.
	PlaceholderRows = 3

	// GaugeRows is the inner height of a tank container.
	GaugeRows = 8

	// GaugeInnerWidth is the inner width of a tank container.
	GaugeInnerWidth = 8

	// DefaultCardWidth is used when the terminal size is unknown.
	DefaultCardWidth = 36

	// MinCardWidth is the narrowest card a surface will draw.
	MinCardWidth = 20

	// CompactModeThreshold stacks cards vertically below this width.
	CompactModeThreshold = 60
)

// Columns is the number of cards per dashboard row.
const Columns = 3
