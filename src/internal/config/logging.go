// FILE: src/internal/config/logging.go
package config

import "fmt"

// LogConfig controls the binary's own diagnostics logger, not the
// façade pipeline it drives
type LogConfig struct {
	// Output mode: "stdout", "stderr", "file", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// File output settings (when Output is "file")
	File *LogFileConfig `toml:"file"`
}

type LogFileConfig struct {
	// Directory for log files
	Directory string `toml:"directory"`

	// Base name for log files
	Name string `toml:"name"`

	// Maximum size per log file in MB
	MaxSizeMB int64 `toml:"max_size_mb"`
}

// DefaultLogConfig returns sensible diagnostics defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "none",
		Level:  "warn",
		File: &LogFileConfig{
			Directory: "./log",
			Name:      "guildlog",
			MaxSizeMB: 100,
		},
	}
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"stdout": true, "stderr": true, "file": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	return nil
}
