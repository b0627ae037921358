// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type providing leveled, structured
//              logging with contextual fields. Loggers are immutable; the
//              With* methods return configured copies, so a logger may be
//              shared freely across goroutines.

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger is a structured, leveled logger
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields added to every entry
	contextFields Fields

	// Guards output writes; shared between all copies of a logger so
	// entries never interleave on the same writer
	mu *sync.Mutex
}

// New creates a new logger with default configuration: info level, text
// format, writing to stderr
func New() *Logger {
	return &Logger{
		level:     DefaultLevel(),
		formatter: NewTextFormatter(),
		output:    os.Stderr,
		mu:        &sync.Mutex{},
	}
}

// clone returns a shallow copy sharing the output mutex
func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// WithLevel returns a copy of the logger with the minimum level set
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormatter returns a copy of the logger using the given formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a copy of the logger writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	c.mu = &sync.Mutex{}
	return c
}

// WithName returns a copy of the logger with a component name attached
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy of the logger with a context field attached to
// every subsequent entry
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy of the logger with context fields attached to
// every subsequent entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.contextFields = l.contextFields.merged(fields)
	return c
}

// Level returns the logger's minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether a message at the given level would be written
func (l *Logger) Enabled(level Level) bool {
	return l.level.Enabled(level)
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields Fields) {
	l.log(LevelTrace, message, nil, fields, 0)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, nil, fields, 0)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, nil, fields, 0)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, nil, fields, 0)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields Fields) {
	l.log(LevelError, message, nil, fields, 0)
}

// ErrorErr logs a message at error level together with an error value.
// Fault errors contribute their code and severity to the entry.
func (l *Logger) ErrorErr(message string, err error, fields Fields) {
	l.log(LevelError, message, err, fields, 0)
}

// Fatal logs a message at fatal level and exits the process
func (l *Logger) Fatal(message string, fields Fields) {
	l.log(LevelFatal, message, nil, fields, 0)
	osExit(1)
}

// StartTimer starts a performance timer that logs through this logger when
// stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

func (l *Logger) log(level Level, message string, err error, fields Fields, duration time.Duration) {
	if !l.Enabled(level) {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		Fields:    l.contextFields.merged(fields),
		Error:     err,
		Duration:  duration,
	}

	out, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write(out)
}

// osExit is swapped out in tests of Fatal
var osExit = os.Exit
