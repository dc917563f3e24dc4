// FILE: src/cmd/guildlog/bootstrap.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"guildlog/src/internal/config"

	"github.com/lixenwraith/log"
	"golang.org/x/term"
)

// initializeDiagnostics sets up the binary's own operational logger
func initializeDiagnostics(cfg *config.Config) (*log.Logger, error) {
	diag := log.NewLogger()

	var configArgs []string

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stdout")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr")

	case "file":
		configArgs = append(configArgs, "enable_stdout=false")
		if cfg.Logging.File != nil {
			configArgs = append(configArgs,
				fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
				fmt.Sprintf("name=%s", cfg.Logging.File.Name),
				fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB))
		}

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	levelValue, err := parseDiagLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	if err := diag.ApplyConfigString(configArgs...); err != nil {
		return diag, err
	}
	return diag, diag.Start()
}

func parseDiagLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

// applyFlagOverrides layers explicit CLI flags over the loaded config
func applyFlagOverrides(cfg *config.Config) {
	if *emitLevel != "" {
		cfg.Emitter.Level = *emitLevel
	}
	if *emitTarget != "" {
		cfg.Emitter.Target = *emitTarget
	}
	if *inputLevel != "" {
		cfg.Input.Level = *inputLevel
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "json":
			cfg.Emitter.JSON = *emitJSON
		case "pretty":
			cfg.Emitter.Pretty = *emitPretty
		case "silent":
			cfg.Emitter.Silent = *emitSilent
		}
	})

	// Colorized text output only makes sense on a terminal
	if cfg.Emitter.Pretty && !cfg.Emitter.JSON {
		fd := int(os.Stdout.Fd())
		if cfg.Emitter.Target == "stderr" {
			fd = int(os.Stderr.Fd())
		}
		if !term.IsTerminal(fd) {
			cfg.Emitter.Pretty = false
		}
	}
}
