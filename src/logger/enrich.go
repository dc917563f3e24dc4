// FILE: src/logger/enrich.go
package logger

import (
	"context"

	"guildlog/src/core"
	"guildlog/src/internal/caller"
)

// enrich merges caller-supplied metadata with the correlation id and
// call-site location. The three enrichment keys are authoritative:
// values a caller supplied under the same names are overwritten.
func (l *Logger) enrich(ctx context.Context, meta core.Meta) core.Meta {
	enriched := meta.Clone()

	id := safeCorrelationID(l.correlator, ctx)
	enriched = enriched.Set(core.KeyCorrelationID, id)

	info := safeResolve(l.resolver)
	enriched = enriched.Set(core.KeyFunction, info.Function)
	enriched = enriched.Set(core.KeyFile, info.File)

	return enriched
}

// safeCorrelationID reads the active id, degrading to absent when the
// source is missing, idle, or misbehaving
func safeCorrelationID(src core.CorrelationSource, ctx context.Context) (id string) {
	defer func() {
		if r := recover(); r != nil {
			id = ""
		}
	}()

	if src == nil {
		return ""
	}
	got, ok := src.CorrelationID(ctx)
	if !ok {
		return ""
	}
	return got
}

// safeResolve locates the call site, degrading to "unknown" when the
// resolver is missing or misbehaving
func safeResolve(r core.CallerResolver) (info core.CallerInfo) {
	defer func() {
		if rec := recover(); rec != nil {
			info = core.CallerInfo{Function: caller.Unknown, File: caller.Unknown}
		}
	}()

	if r == nil {
		return core.CallerInfo{Function: caller.Unknown, File: caller.Unknown}
	}
	return r.Resolve(0)
}
