// FILE: src/correlate/correlate.go
package correlate

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// NewID generates a fresh correlation identifier
func NewID() string {
	return uuid.NewString()
}

// WithID returns a child context carrying the correlation id. The scope
// of the id is the lifetime of the returned context: set it at
// request/operation start and let it fall out of scope at the end.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the correlation id carried by ctx, if any
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ContextSource reads correlation ids from the call context. It is the
// default CorrelationSource wired into the logging façade.
type ContextSource struct{}

// CorrelationID returns the id carried by ctx, or "" and false when
// none is active
func (ContextSource) CorrelationID(ctx context.Context) (string, bool) {
	return FromContext(ctx)
}
