// FILE: src/core/interfaces.go
package core

import "context"

// CorrelationSource supplies the correlation identifier tied to the
// calling execution context, if one is active. Implementations are
// read-only from the pipeline's point of view.
type CorrelationSource interface {
	// CorrelationID returns the active id and true, or "" and false
	// when no id is active for ctx
	CorrelationID(ctx context.Context) (string, bool)
}

// CallerInfo identifies the application call site of a log call
type CallerInfo struct {
	Function string
	File     string
}

// CallerResolver resolves the call site for the frame that invoked the
// public logging call, skipping the given number of intermediate frames.
// Unresolvable fields are reported as "unknown".
type CallerResolver interface {
	Resolve(skip int) CallerInfo
}

// Sink is a level-gated transport accepting fully rendered entries.
// Write must not block the caller; buffering, if any, is owned by the
// sink implementation.
type Sink interface {
	Write(level Level, line []byte) error
}
