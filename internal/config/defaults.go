package config

import (
	_ "embed"
)

//go:embed defaults/daynight.yaml
var defaultYAML []byte

// Default returns the default simulation configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  0, // fit to terminal
			Height: 0,
		},
		Sim: SimConfig{
			TickRate:     30,
			StepsPerTick: 1,
			Scenario:     "classic",
		},
		Display: DisplayConfig{
			GridLines: false,
			Trails:    false,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
