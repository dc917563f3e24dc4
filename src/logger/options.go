// FILE: src/logger/options.go
package logger

import (
	"io"

	"guildlog/src/core"

	"github.com/lixenwraith/log"
)

// Option adjusts the façade's collaborators
type Option func(*options)

type options struct {
	correlator      core.CorrelationSource
	correlatorSet   bool
	resolver        core.CallerResolver
	sink            core.Sink
	diagnostics     *log.Logger
	fallback        io.Writer
	timestampFormat string
}

// WithCorrelator sets the correlation-id source. Passing nil disables
// correlation-id enrichment.
func WithCorrelator(c core.CorrelationSource) Option {
	return func(o *options) {
		o.correlator = c
		o.correlatorSet = true
	}
}

// WithCallerResolver replaces the default call-site resolver
func WithCallerResolver(r core.CallerResolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithSink replaces the default console sink. The caller owns the
// lifecycle of a sink supplied this way; Close will not stop it.
func WithSink(s core.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithDiagnostics sets the operational logger used by the pipeline's
// own components (sink overflow reports and the like)
func WithDiagnostics(l *log.Logger) Option {
	return func(o *options) {
		o.diagnostics = l
	}
}

// WithFallbackWriter redirects the last-resort diagnostic line written
// when the primary emission path fails. Defaults to stderr.
func WithFallbackWriter(w io.Writer) Option {
	return func(o *options) {
		o.fallback = w
	}
}

// WithTimestampFormat overrides the entry timestamp layout
func WithTimestampFormat(layout string) Option {
	return func(o *options) {
		o.timestampFormat = layout
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
