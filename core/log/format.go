// File: format.go
// Title: Log Formatters
// Description: Defines the Formatter interface plus the text and JSON
//              formatter implementations. Fault errors contribute their code
//              and severity as structured fields.

package log

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stdx-go/stdx/core/fault"
)

// Formatter renders a log entry into bytes, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter formats entries as human-readable single lines
type TextFormatter struct {
	// TimestampFormat overrides the time layout; defaults to time.RFC3339
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(layout))
	b.WriteByte(' ')
	b.WriteString(entry.Level.ShortString())
	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}

	for _, k := range sortedKeys(entry.Fields) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
		var fe *fault.Error
		if errors.As(entry.Error, &fe) {
			fmt.Fprintf(&b, " error_code=%s error_severity=%s", fe.Code(), fe.Severity())
		}
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// JSONFormatter formats entries as single-line JSON objects
type JSONFormatter struct {
	// TimestampFormat overrides the time layout; defaults to time.RFC3339Nano
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with default settings
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339Nano
	}

	data := map[string]any{
		"time":    entry.Timestamp.Format(layout),
		"level":   entry.Level.String(),
		"message": entry.Message,
	}

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	for k, v := range entry.Fields {
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		var fe *fault.Error
		if errors.As(entry.Error, &fe) {
			data["error_code"] = fe.Code().String()
			data["error_severity"] = fe.Severity().String()
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func sortedKeys(fields Fields) []string {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
