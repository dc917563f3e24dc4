// FILE: src/core/errors.go
package core

import (
	"fmt"
	"runtime"
	"strings"
)

// NormalizedError is the flattened, serializable shell of an error value.
// The original error is never handed to structured encoding directly;
// arbitrary error types carry circular references and unexported state
// that do not survive serialization.
type NormalizedError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// Optional capabilities an error value may expose. Detection is
// structural, not tied to any concrete error hierarchy.
type namedError interface {
	Name() string
}

type stackedError interface {
	Stack() string
}

// IsErrorShaped reports whether a metadata value is error-shaped
func IsErrorShaped(v any) bool {
	_, ok := v.(error)
	return ok
}

// Normalize reduces an error-shaped value to its NormalizedError shell.
// Returns false when the value is not error-shaped.
func Normalize(v any) (NormalizedError, bool) {
	err, ok := v.(error)
	if !ok {
		return NormalizedError{}, false
	}

	ne := NormalizedError{
		Name:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}
	if n, ok := v.(namedError); ok {
		ne.Name = n.Name()
	}
	if s, ok := v.(stackedError); ok {
		ne.Stack = s.Stack()
	}
	return ne, true
}

// StackText returns the full native rendering of an error-shaped value
// for human-readable output: the multi-line stack when one is carried,
// otherwise the plain error message.
func StackText(v any) string {
	if s, ok := v.(stackedError); ok {
		if stack := s.Stack(); stack != "" {
			return stack
		}
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", v)
}

// TracedError is an error carrying a name and a stack captured at
// construction time, so it survives normalization with all three fields.
type TracedError struct {
	name    string
	message string
	stack   string
	cause   error
}

// NewTracedError creates a named error with a captured stack
func NewTracedError(name, message string) *TracedError {
	return &TracedError{
		name:    name,
		message: message,
		stack:   captureStack(name, message, 3),
	}
}

// Trace wraps an existing error with a captured stack. The name is the
// wrapped error's dynamic type unless it names itself.
func Trace(err error) *TracedError {
	if err == nil {
		return nil
	}
	name := fmt.Sprintf("%T", err)
	if n, ok := err.(namedError); ok {
		name = n.Name()
	}
	return &TracedError{
		name:    name,
		message: err.Error(),
		stack:   captureStack(name, err.Error(), 3),
		cause:   err,
	}
}

func (e *TracedError) Error() string { return e.message }

func (e *TracedError) Name() string { return e.name }

func (e *TracedError) Stack() string { return e.stack }

func (e *TracedError) Unwrap() error { return e.cause }

// captureStack renders the current call stack with a leading
// "Name: message" line, skipping the given number of frames.
func captureStack(name, message string, skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(message)

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&b, "\n\t%s:%d %s", frame.File, frame.Line, frame.Function)
		}
		if !more {
			break
		}
	}
	return b.String()
}
