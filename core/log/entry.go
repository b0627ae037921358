// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry structure handed to formatters, and the
//              Fields helpers for building structured key-value data.

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Custom fields
	Fields Fields

	// Error information
	Error error

	// Performance metrics, set by Timer
	Duration time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]any

// Field creates a single field for logging
func Field(key string, value any) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// merged returns the union of the receiver and extra, with extra winning on
// duplicate keys. Returns nil when both are empty.
func (f Fields) merged(extra Fields) Fields {
	if len(f) == 0 && len(extra) == 0 {
		return nil
	}
	out := make(Fields, len(f)+len(extra))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
