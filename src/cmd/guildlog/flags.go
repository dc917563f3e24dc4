// FILE: src/cmd/guildlog/flags.go
package main

import (
	"flag"
	"fmt"
	"os"

	"guildlog/src/core"
)

// Command-line flags
var (
	// General flags
	configFile  = flag.String("config", "", "Config file path")
	showVersion = flag.Bool("version", false, "Show version information")

	// Emitter flags
	emitLevel  = flag.String("level", "", "Minimum severity emitted: error, warn, info, verbose, debug (overrides config)")
	emitJSON   = flag.Bool("json", false, "Render structured JSON records instead of plain text")
	emitPretty = flag.Bool("pretty", false, "Indent JSON output / colorize the text level token")
	emitSilent = flag.Bool("silent", false, "Run the pipeline without writing to the sink")
	emitTarget = flag.String("target", "", "Console target: stdout, stderr (overrides config)")

	// Input flags
	inputLevel = flag.String("input-level", "", "Level piped stdin lines are emitted at (overrides config)")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "guildlog - structured-logging pipeline driver\n\n")
	fmt.Fprintf(os.Stderr, "Reads lines from stdin and re-emits them through the enrichment\n")
	fmt.Fprintf(os.Stderr, "and rendering pipeline.\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options] < input\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Re-emit build output as pretty JSON records\n")
	fmt.Fprintf(os.Stderr, "  make 2>&1 | %s --json --pretty\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Colorized text at debug verbosity\n")
	fmt.Fprintf(os.Stderr, "  %s --level debug --pretty < app.log\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  GUILDLOG_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  GUILDLOG_CONFIG_DIR   Config directory\n")
}

func parseFlags() error {
	flag.Parse()

	if *emitLevel != "" {
		if _, err := core.ParseLevel(*emitLevel); err != nil {
			return fmt.Errorf("invalid level: %s (valid: error, warn, info, verbose, debug)", *emitLevel)
		}
	}

	if *inputLevel != "" {
		if _, err := core.ParseLevel(*inputLevel); err != nil {
			return fmt.Errorf("invalid input-level: %s (valid: error, warn, info, verbose, debug)", *inputLevel)
		}
	}

	if *emitTarget != "" {
		validTargets := map[string]bool{
			"stdout": true, "stderr": true,
		}
		if !validTargets[*emitTarget] {
			return fmt.Errorf("invalid target: %s (valid: stdout, stderr)", *emitTarget)
		}
	}

	return nil
}
