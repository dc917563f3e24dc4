// FILE: src/internal/format/text.go
package format

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"guildlog/src/core"

	"github.com/lixenwraith/log"
)

// ANSI color escapes for level tokens, chosen by severity
var levelColors = map[core.Level]string{
	core.LevelError:   "\033[31m",
	core.LevelWarn:    "\033[33m",
	core.LevelInfo:    "\033[32m",
	core.LevelVerbose: "\033[36m",
	core.LevelDebug:   "\033[34m",
}

const colorReset = "\033[0m"

// TextRenderer produces human-readable log lines from enriched entries.
type TextRenderer struct {
	opts   Options
	logger *log.Logger
}

// NewTextRenderer creates a new plain-text renderer
func NewTextRenderer(opts Options, logger *log.Logger) *TextRenderer {
	return &TextRenderer{
		opts:   opts,
		logger: logger,
	}
}

// Render composes "{timestamp} {level}[ {correlationId}]: {message}"
// followed by ", key=value" for every remaining metadata field in
// insertion order.
func (r *TextRenderer) Render(entry core.Entry) ([]byte, error) {
	var b strings.Builder

	level := entry.Level.String()
	if r.opts.Pretty {
		if color, ok := levelColors[entry.Level]; ok {
			level = color + level + colorReset
		}
	}

	b.WriteString(entry.Time.Format(r.opts.timestampFormat()))
	b.WriteByte(' ')
	b.WriteString(level)
	if id, ok := entry.Meta.Get(core.KeyCorrelationID); ok {
		if s, _ := id.(string); s != "" {
			b.WriteByte(' ')
			b.WriteString(s)
		}
	}
	b.WriteString(": ")
	b.WriteString(entry.Message)

	for _, f := range entry.Meta {
		// Head fields were already consumed
		switch f.Key {
		case core.KeyTimestamp, core.KeyLevel, core.KeyMessage, core.KeyCorrelationID:
			continue
		}

		rendered, err := renderValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to render field %q: %w", f.Key, err)
		}

		b.WriteString(", ")
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(rendered)
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// Name returns the renderer's type name.
func (r *TextRenderer) Name() string {
	return "text"
}

// renderValue switches on the shape of a metadata value: error-shaped
// values keep their full native stack for readability, composites are
// JSON-encoded, everything else takes its plain string form.
func renderValue(v any) (string, error) {
	if core.IsErrorShaped(v) {
		return "\n" + core.StackText(v) + "\n", nil
	}

	if isComposite(v) {
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}

	return fmt.Sprintf("%v", v), nil
}

func isComposite(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	if k == reflect.Pointer {
		k = reflect.TypeOf(v).Elem().Kind()
	}
	switch k {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}
