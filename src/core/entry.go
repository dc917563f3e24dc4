// FILE: src/core/entry.go
package core

import "time"

// TimeFormat is the wire format for entry timestamps (local time,
// second precision, no timezone offset)
const TimeFormat = "2006-01-02 15:04:05"

// Reserved entry keys. Caller metadata never overwrites the first three;
// the enrichment keys are authoritative and overwrite caller values.
const (
	KeyTimestamp     = "timestamp"
	KeyLevel         = "level"
	KeyMessage       = "message"
	KeyCorrelationID = "correlationId"
	KeyFunction      = "function"
	KeyFile          = "file"
	KeyError         = "error"
)

// Field is a single metadata key/value pair
type Field struct {
	Key   string
	Value any
}

// F is a shorthand Field constructor
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Meta is an open, insertion-ordered metadata bag. Order is irrelevant
// for structured rendering but preserved for plain-text rendering.
type Meta []Field

// Get returns the value for key and whether it is present
func (m Meta) Get(key string) (any, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value for key in place if present, otherwise appends.
// Returns the (possibly grown) bag.
func (m Meta) Set(key string, value any) Meta {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, Field{Key: key, Value: value})
}

// Clone returns an independent copy of the bag
func (m Meta) Clone() Meta {
	if m == nil {
		return nil
	}
	out := make(Meta, len(m))
	copy(out, m)
	return out
}

// Entry is the unit produced per log call. Timestamp, level and message
// are always present; everything else comes from enriched metadata.
// Entries are created fresh per call and discarded after the sink write.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Meta    Meta
}
