// FILE: src/logger/logger.go
package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"guildlog/src/core"
	"guildlog/src/correlate"
	"guildlog/src/internal/caller"
	"guildlog/src/internal/format"
	"guildlog/src/internal/sink"

	"github.com/lixenwraith/log"
)

// Logger is the logging façade. Every public method runs the full
// enrichment-and-rendering pipeline and is guaranteed never to panic:
// any failure along the way degrades to a single best-effort diagnostic
// line instead of reaching the caller.
type Logger struct {
	threshold  core.Level
	silent     bool
	renderer   format.Renderer
	sink       core.Sink
	ownedSink  *sink.Console
	correlator core.CorrelationSource
	resolver   core.CallerResolver
	fallback   io.Writer
	diag       *log.Logger
}

// New creates a Logger from config and options
func New(cfg *Config, opts ...Option) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	threshold, err := cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	options := applyOptions(opts...)

	diag := options.diagnostics
	if diag == nil {
		diag = log.NewLogger()
	}

	rendererName := "text"
	if cfg.JSON {
		rendererName = "json"
	}
	renderer, err := format.New(rendererName, format.Options{
		Pretty:          cfg.Pretty,
		TimestampFormat: options.timestampFormat,
	}, diag)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		threshold:  threshold,
		silent:     cfg.Silent,
		renderer:   renderer,
		correlator: options.correlator,
		resolver:   options.resolver,
		fallback:   options.fallback,
		diag:       diag,
	}

	if !options.correlatorSet {
		l.correlator = correlate.ContextSource{}
	}
	if l.resolver == nil {
		l.resolver = caller.New("guildlog/src/logger.")
	}
	if l.fallback == nil {
		l.fallback = os.Stderr
	}

	if options.sink != nil {
		l.sink = options.sink
	} else {
		console, err := sink.NewConsole(sink.ConsoleConfig{
			Target:     cfg.Target,
			MinLevel:   threshold,
			BufferSize: cfg.BufferSize,
		}, diag)
		if err != nil {
			return nil, err
		}
		l.sink = console
		l.ownedSink = console
	}

	return l, nil
}

// Close flushes and stops the default console sink, if this Logger
// owns one. Sinks supplied via WithSink are left to their owner.
func (l *Logger) Close() {
	if l.ownedSink != nil {
		l.ownedSink.Stop()
	}
}

func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(context.Background(), core.LevelError, msg, fields)
}

func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(context.Background(), core.LevelWarn, msg, fields)
}

func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(context.Background(), core.LevelInfo, msg, fields)
}

func (l *Logger) Verbose(msg string, fields ...core.Field) {
	l.log(context.Background(), core.LevelVerbose, msg, fields)
}

func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(context.Background(), core.LevelDebug, msg, fields)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, fields ...core.Field) {
	l.log(ctx, core.LevelError, msg, fields)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, fields ...core.Field) {
	l.log(ctx, core.LevelWarn, msg, fields)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, fields ...core.Field) {
	l.log(ctx, core.LevelInfo, msg, fields)
}

func (l *Logger) VerboseContext(ctx context.Context, msg string, fields ...core.Field) {
	l.log(ctx, core.LevelVerbose, msg, fields)
}

func (l *Logger) DebugContext(ctx context.Context, msg string, fields ...core.Field) {
	l.log(ctx, core.LevelDebug, msg, fields)
}

// Log emits an entry at an arbitrary level
func (l *Logger) Log(ctx context.Context, level core.Level, msg string, fields ...core.Field) {
	l.log(ctx, level, msg, fields)
}

// log is the single emission entry point. It never panics and never
// returns an error: the primary path runs behind a recover boundary,
// and any failure takes the fallback path instead.
func (l *Logger) log(ctx context.Context, level core.Level, msg string, fields core.Meta) {
	defer func() {
		if r := recover(); r != nil {
			l.fallbackWrite(level, msg, fields, fmt.Errorf("panic: %v", r))
		}
	}()

	if !l.threshold.Allows(level) {
		return
	}

	if err := l.emit(ctx, level, msg, fields); err != nil {
		l.fallbackWrite(level, msg, fields, err)
	}
}

// emit runs the primary pipeline: enrich, render, sink write. Each
// stage reports failure through the returned error.
func (l *Logger) emit(ctx context.Context, level core.Level, msg string, meta core.Meta) error {
	entry := core.Entry{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Meta:    l.enrich(ctx, meta),
	}

	line, err := l.renderer.Render(entry)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if l.silent {
		return nil
	}

	if err := l.sink.Write(level, line); err != nil {
		return fmt.Errorf("sink write failed: %w", err)
	}
	return nil
}

// fallbackWrite emits one diagnostic line on the low-level fallback
// writer, bypassing the renderer and sink entirely. A human operator
// still gets some signal when the primary path is broken.
func (l *Logger) fallbackWrite(level core.Level, msg string, meta core.Meta, cause error) {
	defer func() {
		// Last resort: even the fallback must not reach the caller
		_ = recover()
	}()

	fmt.Fprintf(l.fallback, "guildlog: emit failed (%v): level=%s message=%s meta=%s\n",
		cause, level, msg, metaString(meta))
}

// metaString serializes metadata on a best-effort basis for the
// fallback line
func metaString(meta core.Meta) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<meta serialization failed: %v>", r)
		}
	}()

	if len(meta) == 0 {
		return "{}"
	}

	out := make(map[string]any, len(meta))
	for _, f := range meta {
		if ne, ok := core.Normalize(f.Value); ok {
			out[f.Key] = ne
			continue
		}
		out[f.Key] = f.Value
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf("<meta serialization failed: %s>", err)
	}
	return string(encoded)
}
