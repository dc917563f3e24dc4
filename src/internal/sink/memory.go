// FILE: src/internal/sink/memory.go
package sink

import (
	"sync"

	"guildlog/src/core"
)

// Memory captures rendered entries in memory. Useful for tests and for
// embedding the pipeline where the output is consumed programmatically.
type Memory struct {
	mu       sync.Mutex
	minLevel core.Level
	lines    [][]byte
}

// NewMemory creates a memory sink gated at the given minimum severity
func NewMemory(minLevel core.Level) *Memory {
	return &Memory{minLevel: minLevel}
}

// Write records a rendered line
func (s *Memory) Write(level core.Level, line []byte) error {
	if !s.minLevel.Allows(level) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(line))
	copy(buf, line)
	s.lines = append(s.lines, buf)
	return nil
}

// Lines returns the captured lines as strings
func (s *Memory) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	for i, l := range s.lines {
		out[i] = string(l)
	}
	return out
}

// Reset discards captured lines
func (s *Memory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}
