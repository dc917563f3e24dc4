// FILE: src/internal/sink/console.go
package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"guildlog/src/core"

	"github.com/lixenwraith/log"
)

// ConsoleConfig holds configuration for console sinks
type ConsoleConfig struct {
	Target     string // "stdout" or "stderr"
	MinLevel   core.Level
	BufferSize int
}

// Console writes rendered entries to stdout or stderr through a
// buffered channel with a single writer goroutine. Write never blocks
// the logging call; entries that would overflow the buffer are dropped
// and counted.
type Console struct {
	input   chan []byte
	config  ConsoleConfig
	output  io.Writer
	logger  *log.Logger
	stopped chan struct{}
	once    sync.Once

	// Statistics
	totalWritten atomic.Uint64
	totalDropped atomic.Uint64
}

// NewConsole creates and starts a console sink
func NewConsole(cfg ConsoleConfig, logger *log.Logger) (*Console, error) {
	var output io.Writer
	switch cfg.Target {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return nil, fmt.Errorf("unknown console target: %s", cfg.Target)
	}

	return newConsole(cfg, output, logger), nil
}

func newConsole(cfg ConsoleConfig, output io.Writer, logger *log.Logger) *Console {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}

	s := &Console{
		input:   make(chan []byte, cfg.BufferSize),
		config:  cfg,
		output:  output,
		logger:  logger,
		stopped: make(chan struct{}),
	}
	go s.processLoop()

	return s
}

// Write enqueues a rendered line for the writer goroutine. Entries below
// the configured minimum severity are dropped by level gating.
func (s *Console) Write(level core.Level, line []byte) error {
	if !s.config.MinLevel.Allows(level) {
		return nil
	}

	select {
	case s.input <- line:
		return nil
	default:
		dropped := s.totalDropped.Add(1)
		s.logger.Warn("msg", "Console sink buffer full, dropping entry",
			"component", "console_sink",
			"total_dropped", dropped)
		return fmt.Errorf("console sink buffer full")
	}
}

// Stop drains buffered entries and stops the writer goroutine
func (s *Console) Stop() {
	s.once.Do(func() {
		close(s.input)
		<-s.stopped
	})
}

// Stats returns write/drop counters
func (s *Console) Stats() (written, dropped uint64) {
	return s.totalWritten.Load(), s.totalDropped.Load()
}

func (s *Console) processLoop() {
	defer close(s.stopped)

	for line := range s.input {
		if _, err := s.output.Write(line); err != nil {
			s.logger.Error("msg", "Console write failed",
				"component", "console_sink",
				"error", err)
			continue
		}
		s.totalWritten.Add(1)
	}
}
