// FILE: src/internal/config/config.go
package config

import (
	"fmt"

	"guildlog/src/core"
	"guildlog/src/logger"
)

// Config is the root configuration for the guildlog binary
type Config struct {
	// Emitter configures the logging façade pipeline
	Emitter *logger.Config `toml:"emitter"`

	// Input controls how piped stdin lines are re-emitted
	Input *InputConfig `toml:"input"`

	// Logging configures the binary's own diagnostics output
	Logging *LogConfig `toml:"logging"`
}

// InputConfig controls stdin re-emission
type InputConfig struct {
	// Level every piped line is emitted at
	Level string `toml:"level"`

	// Correlate opens one correlation scope for the whole run
	Correlate bool `toml:"correlate"`
}

func defaults() *Config {
	return &Config{
		Emitter: logger.DefaultConfig(),
		Input: &InputConfig{
			Level:     "info",
			Correlate: true,
		},
		Logging: DefaultLogConfig(),
	}
}

func (c *Config) validate() error {
	if c.Emitter == nil {
		c.Emitter = logger.DefaultConfig()
	}
	if c.Input == nil {
		c.Input = &InputConfig{Level: "info", Correlate: true}
	}
	if c.Logging == nil {
		c.Logging = DefaultLogConfig()
	}

	if _, err := core.ParseLevel(c.Input.Level); err != nil {
		return fmt.Errorf("invalid input level: %w", err)
	}

	return validateLogConfig(c.Logging)
}
