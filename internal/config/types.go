package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Block types understood by the builder.
const (
	BlockCpu  = "cpu"
	BlockWifi = "wifi"
)

// Config represents the complete .barlight.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Blocks  []BlockConfig `yaml:"blocks" mapstructure:"blocks"`
}

// BlockConfig defines a single bar block and its refresh behavior.
type BlockConfig struct {
	// Type selects the collector: "cpu" or "wifi".
	Type string `yaml:"type" mapstructure:"type"`

	// Format is the display template. Tokens depend on the block type:
	// cpu understands {}, {percent}, {usage}; wifi understands {},
	// {ssid}, {quality}.
	Format string `yaml:"format" mapstructure:"format"`

	// Interval is how often the block refreshes. Duration string in YAML
	// (like "5s" or "1m").
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Color is the 24-bit render color as a #RRGGBB hex string.
	Color string `yaml:"color" mapstructure:"color"`

	// Interface pins a wifi block to a specific wireless interface,
	// skipping detection. Ignored for cpu blocks.
	Interface string `yaml:"interface,omitempty" mapstructure:"interface"`
}

// LipglossColor returns the block color in the form the render layer uses.
func (b BlockConfig) LipglossColor() lipgloss.Color {
	return lipgloss.Color(b.Color)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Blocks: []BlockConfig{
			{
				Type:     BlockCpu,
				Format:   "CPU {percent}%",
				Interval: 5 * time.Second,
				Color:    "#A3BE8C",
			},
			{
				Type:     BlockWifi,
				Format:   "{ssid} {quality}%",
				Interval: 10 * time.Second,
				Color:    "#81A1C1",
			},
		},
	}
}
