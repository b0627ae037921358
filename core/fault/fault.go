// File: fault.go
// Title: Core Error Implementation
// Description: Implements the Error type with classification code, severity,
//              source location and key-value details. Wrapping preserves the
//              full cause chain and stays compatible with errors.Is/As.

package fault

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
)

// Error is a structured error with code, severity and source information.
// The zero value is not useful; construct with New, Errorf or Wrap.
type Error struct {
	message  string
	cause    error
	code     Code
	severity Severity
	when     time.Time

	// Source location the error was raised at
	file     string
	line     int
	function string

	details map[string]any
}

// New creates a new Error with the given message. The source location of the
// caller is captured automatically.
func New(message string) *Error {
	return newError(message, 3)
}

// Errorf creates a new Error with a formatted message
func Errorf(format string, args ...any) *Error {
	return newError(fmt.Sprintf(format, args...), 3)
}

// Wrap wraps an existing error with additional context. Returns nil if err is
// nil. If err is itself a fault Error its code and severity carry over to the
// wrapper so that HasCode keeps working at the outermost level.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := newError(message, 3)
	wrapped.cause = err

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
	}

	return wrapped
}

func newError(message string, skip int) *Error {
	e := &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		when:     time.Now(),
	}

	if pc, file, line, ok := runtime.Caller(skip - 1); ok {
		e.file = file
		e.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			e.function = fn.Name()
		}
	}

	return e
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the classification code. The severity follows the code's
// default unless it was set explicitly before.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = severityFromCode(code)
	}
	return e
}

// WithSeverity sets the severity explicitly
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches a key-value detail to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	e.details[key] = value
	return e
}

// Code returns the classification code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.when
}

// Source returns the file, line and function the error was raised at
func (e *Error) Source() (file string, line int, function string) {
	return e.file, e.line, e.function
}

// Details returns a copy of the attached key-value details
func (e *Error) Details() map[string]any {
	if e.details == nil {
		return nil
	}
	result := make(map[string]any, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// RootCause returns the deepest error in the chain
func (e *Error) RootCause() error {
	var current error = e
	for {
		next := errors.Unwrap(current)
		if next == nil {
			return current
		}
		current = next
	}
}

// String returns a detailed multi-line representation of the error,
// including the source location it was raised at
func (e *Error) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "error: %s\n", e.message)
	fmt.Fprintf(&b, "code: %s\n", e.code)
	fmt.Fprintf(&b, "severity: %s\n", e.severity)
	if e.file != "" {
		fmt.Fprintf(&b, "raised at: %s:%d", e.file, e.line)
		if e.function != "" {
			fmt.Fprintf(&b, " (%s)", e.function)
		}
		b.WriteByte('\n')
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		fmt.Fprintf(&b, "details: {%s}\n", strings.Join(pairs, ", "))
	}

	if e.cause != nil {
		fmt.Fprintf(&b, "cause: %s\n", e.cause.Error())
	}

	return strings.TrimRight(b.String(), "\n")
}

// HasCode reports whether any error in the chain is a fault Error carrying
// the given code
func HasCode(err error, code Code) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.code == code
	}
	return false
}

// CodeOf returns the code of the first fault Error in the chain, or
// CodeUnknown if there is none
func CodeOf(err error) Code {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.code
	}
	return CodeUnknown
}

// SeverityOf returns the severity of the first fault Error in the chain, or
// SeverityMedium if there is none
func SeverityOf(err error) Severity {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.severity
	}
	return SeverityMedium
}
