// FILE: src/logger/config.go
package logger

import (
	"fmt"

	"guildlog/src/core"
)

// Config controls the enrichment-and-rendering pipeline
type Config struct {
	// Minimum severity emitted: "error", "warn", "info", "verbose", "debug"
	Level string `toml:"level"`

	// JSON selects the structured renderer; false selects plain text
	JSON bool `toml:"json"`

	// Pretty enables indented structured output (json mode) or a
	// colorized level token (text mode)
	Pretty bool `toml:"pretty"`

	// Silent runs the full pipeline but suppresses all sink writes
	Silent bool `toml:"silent"`

	// Target for the default console sink: "stdout" or "stderr"
	Target string `toml:"target"`

	// BufferSize for the default console sink
	BufferSize int `toml:"buffer_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Target: "stdout",
	}
}

func (c *Config) validate() (core.Level, error) {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Target == "" {
		c.Target = "stdout"
	}

	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return 0, err
	}

	validTargets := map[string]bool{
		"stdout": true, "stderr": true,
	}
	if !validTargets[c.Target] {
		return 0, fmt.Errorf("invalid console target: %s", c.Target)
	}

	return level, nil
}
