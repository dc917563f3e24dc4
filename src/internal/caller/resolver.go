// FILE: src/internal/caller/resolver.go
package caller

import (
	"path/filepath"
	"runtime"
	"strings"

	"guildlog/src/core"
)

// Unknown is reported when a frame cannot be resolved
const Unknown = "unknown"

// Resolver locates the application call site of a log call by walking
// the stack past the emission machinery's own frames.
type Resolver struct {
	// Function-name prefixes treated as internal plumbing and skipped
	skipPrefixes []string
}

// New creates a resolver that skips frames belonging to the given
// function-name prefixes in addition to this package's own frames.
func New(skipPrefixes ...string) *Resolver {
	prefixes := append([]string{"guildlog/src/internal/caller."}, skipPrefixes...)
	return &Resolver{skipPrefixes: prefixes}
}

// Resolve returns the function and file of the first frame that is not
// internal plumbing, starting skip frames above the caller of Resolve.
func (r *Resolver) Resolve(skip int) core.CallerInfo {
	pcs := make([]uintptr, 16)

	// 0: Callers, 1: Resolve. Start from the caller of Resolve.
	n := runtime.Callers(2+skip, pcs)
	if n == 0 {
		return core.CallerInfo{Function: Unknown, File: Unknown}
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()

		if frame.Function != "" && !r.isInternal(frame.Function) {
			return core.CallerInfo{
				Function: shortFunc(frame.Function),
				File:     filepath.Base(frame.File),
			}
		}
		if !more {
			break
		}
	}

	return core.CallerInfo{Function: Unknown, File: Unknown}
}

func (r *Resolver) isInternal(fn string) bool {
	for _, prefix := range r.skipPrefixes {
		if strings.HasPrefix(fn, prefix) {
			return true
		}
	}
	return false
}

// shortFunc trims the package path from a fully qualified function name,
// keeping "pkg.Func" or "pkg.(*Type).Method"
func shortFunc(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		return fn[i+1:]
	}
	return fn
}
