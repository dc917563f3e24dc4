// FILE: src/core/level.go
package core

import (
	"fmt"
	"strings"
)

// Level is a log severity. Lower values are more severe.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelDebug
)

var levelNames = map[Level]string{
	LevelError:   "error",
	LevelWarn:    "warn",
	LevelInfo:    "info",
	LevelVerbose: "verbose",
	LevelDebug:   "debug",
}

// ParseLevel converts a level name into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "verbose":
		return LevelVerbose, nil
	case "debug":
		return LevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

// String returns the wire name of the level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "info"
}

// Allows reports whether an entry at level lvl passes a minimum-severity
// threshold of l. A threshold of LevelInfo allows error, warn and info.
func (l Level) Allows(lvl Level) bool {
	return lvl <= l
}

// Levels returns all levels ordered from most to least severe
func Levels() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelVerbose, LevelDebug}
}
