// File: timer.go
// Title: Performance Timer
// Description: Provides a monotonic timer for measuring operation duration.
//              A timer can be used standalone (Elapsed/Reset) or bound to a
//              logger so that stopping it logs the measured duration.

package log

import (
	"time"
)

// Timer measures the duration of an operation. The stored instant is taken
// from the monotonic clock at construction or the last Reset.
type Timer struct {
	logger    *Logger
	operation string
	started   time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates and starts a timer for the given operation. The logger
// may be nil, in which case stopping only returns the elapsed duration.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		started:   time.Now(),
		level:     LevelDebug,
	}
}

// WithLevel sets the level for the completion log entry
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion log entry
func (t *Timer) WithField(key string, value any) *Timer {
	if t.fields == nil {
		t.fields = make(Fields)
	}
	t.fields[key] = value
	return t
}

// Elapsed returns the time elapsed since the timer was started or last reset
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.started)
}

// Reset discards the stored instant, replaces it with the current time and
// returns the timer
func (t *Timer) Reset() *Timer {
	t.started = time.Now()
	t.stopped = false
	return t
}

// Stop stops the timer, logs the elapsed time and returns it. A second Stop
// is a no-op returning zero.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		fields := t.fields.merged(Fields{"operation": t.operation})
		t.logger.log(t.level, t.operation+" completed", nil, fields, elapsed)
	}

	return elapsed
}

// StopErr stops the timer and logs the failure of the operation together
// with the elapsed time
func (t *Timer) StopErr(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		fields := t.fields.merged(Fields{"operation": t.operation})
		t.logger.log(LevelError, t.operation+" failed", err, fields, elapsed)
	}

	return elapsed
}
