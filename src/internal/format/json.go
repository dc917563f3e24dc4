// FILE: src/internal/format/json.go
package format

import (
	"encoding/json"
	"fmt"

	"guildlog/src/core"

	"github.com/lixenwraith/log"
)

// JSONRenderer produces structured records from enriched entries.
type JSONRenderer struct {
	opts   Options
	logger *log.Logger
}

// NewJSONRenderer creates a new structured renderer
func NewJSONRenderer(opts Options, logger *log.Logger) *JSONRenderer {
	return &JSONRenderer{
		opts:   opts,
		logger: logger,
	}
}

// Render transforms a single Entry into a JSON byte slice.
func (r *JSONRenderer) Render(entry core.Entry) ([]byte, error) {
	output := make(map[string]any, len(entry.Meta)+3)

	output[core.KeyTimestamp] = entry.Time.Format(r.opts.timestampFormat())
	output[core.KeyLevel] = entry.Level.String()
	output[core.KeyMessage] = entry.Message

	for _, f := range entry.Meta {
		// The standard fields are authoritative; metadata never
		// overwrites them
		switch f.Key {
		case core.KeyTimestamp, core.KeyLevel, core.KeyMessage:
			continue
		}

		// An absent correlation id is omitted rather than emitted empty
		if f.Key == core.KeyCorrelationID {
			if id, ok := f.Value.(string); ok && id == "" {
				continue
			}
		}

		// Error-shaped values go out as their normalized shell; the
		// original error object never reaches the encoder
		if ne, ok := core.Normalize(f.Value); ok {
			output[f.Key] = ne
			continue
		}

		output[f.Key] = f.Value
	}

	var result []byte
	var err error
	if r.opts.Pretty {
		result, err = json.MarshalIndent(output, "", "  ")
	} else {
		result, err = json.Marshal(output)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	return append(result, '\n'), nil
}

// Name returns the renderer's type name.
func (r *JSONRenderer) Name() string {
	return "json"
}
