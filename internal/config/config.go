// Package config provides YAML-based configuration loading for the
// day/night simulation.
package config

import "fmt"

// Config contains all tunable parameters for a simulation run.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Sim     SimConfig     `yaml:"sim"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the playing field dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SimConfig defines step pacing and the scenario to run.
type SimConfig struct {
	TickRate     int    `yaml:"tick_rate"`      // display frames per second
	StepsPerTick int    `yaml:"steps_per_tick"` // simulation steps per frame
	Scenario     string `yaml:"scenario"`
}

// DisplayConfig defines rendering preferences.
type DisplayConfig struct {
	GridLines bool `yaml:"grid_lines"`
	Trails    bool `yaml:"trails"`
}

// Validate checks that the configuration is usable. Zero dimensions are
// allowed and mean "fit to terminal".
func (c Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("grid dimensions must be non-negative, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.Width > 0 && c.Grid.Width < 2 {
		return fmt.Errorf("grid width %d too small, need at least 2 columns", c.Grid.Width)
	}
	if c.Sim.TickRate < 1 || c.Sim.TickRate > 120 {
		return fmt.Errorf("tick_rate %d out of range 1..120", c.Sim.TickRate)
	}
	if c.Sim.StepsPerTick < 1 {
		return fmt.Errorf("steps_per_tick must be at least 1, got %d", c.Sim.StepsPerTick)
	}
	if c.Sim.Scenario == "" {
		return fmt.Errorf("scenario must not be empty")
	}
	return nil
}
