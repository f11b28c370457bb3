// Package config provides YAML configuration for the blockfall CLI.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Config is the full CLI configuration.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Log        LogConfig        `yaml:"log"`
}

// FieldConfig sets the playfield size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig controls where and how new pieces enter the field.
type SpawnConfig struct {
	X              int  `yaml:"x"`
	Row            int  `yaml:"row"`
	RandomRotation bool `yaml:"random_rotation"`
	RandomColumn   bool `yaml:"random_column"`
}

// SimulationConfig drives the seeded simulation.
type SimulationConfig struct {
	Seed            int64 `yaml:"seed"`
	Pieces          int   `yaml:"pieces"`
	MaxTicks        int   `yaml:"max_ticks"` // per piece
	Panels          int   `yaml:"panels"`
	MaskedPlacement bool  `yaml:"masked_placement"`
}

// RenderConfig selects glyphs and coloring.
type RenderConfig struct {
	Color  bool   `yaml:"color"`
	Empty  string `yaml:"empty"`
	Filled string `yaml:"filled"`
}

// LogConfig sets the log level (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration. It matches the embedded
// defaults file and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Spawn: SpawnConfig{
			X:              3,
			Row:            0,
			RandomRotation: true,
		},
		Simulation: SimulationConfig{
			Seed:     5,
			Pieces:   20,
			MaxTicks: 500,
			Panels:   1,
		},
		Render: RenderConfig{
			Color:  true,
			Empty:  "░░",
			Filled: "██",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size %dx%d must be positive", c.Field.Width, c.Field.Height))
	}
	if c.Spawn.X < 0 || c.Spawn.Row < 0 {
		errs = append(errs, fmt.Errorf("spawn offset (%d,%d) must not be negative", c.Spawn.X, c.Spawn.Row))
	}
	if c.Simulation.Pieces < 0 {
		errs = append(errs, fmt.Errorf("simulation pieces %d must not be negative", c.Simulation.Pieces))
	}
	if c.Simulation.MaxTicks <= 0 {
		errs = append(errs, fmt.Errorf("simulation max_ticks %d must be positive", c.Simulation.MaxTicks))
	}
	if c.Simulation.Panels <= 0 {
		errs = append(errs, fmt.Errorf("simulation panels %d must be positive", c.Simulation.Panels))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// LogLevel returns the parsed log level, or info when it is invalid.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
