// FILE: src/internal/format/format.go
package format

import (
	"fmt"

	"guildlog/src/core"

	"github.com/lixenwraith/log"
)

// Renderer transforms an enriched Entry into its final output bytes.
type Renderer interface {
	// Render takes an Entry and returns the rendered log line
	Render(entry core.Entry) ([]byte, error)

	// Name returns the renderer type name
	Name() string
}

// Options holds the configuration axes shared by both renderers
type Options struct {
	// Pretty enables indented output (json) or colorized level tokens (text)
	Pretty bool

	// TimestampFormat overrides core.TimeFormat when non-empty
	TimestampFormat string
}

// New creates a Renderer by name ("json" or "text")
func New(name string, opts Options, logger *log.Logger) (Renderer, error) {
	switch name {
	case "json":
		return NewJSONRenderer(opts, logger), nil
	case "text", "":
		return NewTextRenderer(opts, logger), nil
	default:
		return nil, fmt.Errorf("unknown renderer type: %s", name)
	}
}

func (o Options) timestampFormat() string {
	if o.TimestampFormat != "" {
		return o.TimestampFormat
	}
	return core.TimeFormat
}
