// FILE: src/cmd/guildlog/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"guildlog/src/core"
	"guildlog/src/correlate"
	"guildlog/src/internal/config"
	"guildlog/src/internal/version"
	"guildlog/src/logger"
)

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if *configFile != "" {
		os.Setenv("GUILDLOG_CONFIG_FILE", *configFile)
	}

	cfg, err := config.LoadWithCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg)

	diag, err := initializeDiagnostics(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize diagnostics: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := diag.Shutdown(2 * time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "Diagnostics shutdown error: %v\n", err)
		}
	}()

	emitter, err := logger.New(cfg.Emitter, logger.WithDiagnostics(diag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create emitter: %v\n", err)
		os.Exit(1)
	}
	defer emitter.Close()

	level, _ := core.ParseLevel(cfg.Input.Level)

	ctx := context.Background()
	if cfg.Input.Correlate {
		ctx = correlate.WithID(ctx, correlate.NewID())
	}

	diag.Info("msg", "guildlog starting",
		"version", version.Short(),
		"level", cfg.Emitter.Level,
		"json", cfg.Emitter.JSON)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := 0
	for scanner.Scan() {
		emitter.Log(ctx, level, scanner.Text())
		lines++
	}
	if err := scanner.Err(); err != nil {
		diag.Error("msg", "stdin read failed", "error", err)
	}

	diag.Info("msg", "guildlog done", "lines", lines)
}
