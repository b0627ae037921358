// Package log provides structured logging for the stdx library and its tools.
//
// Package: log
// Title: stdx Structured Logging
// Description: This package implements a small structured logging system with
//              levels, key-value fields, text and JSON output formats, and
//              integration with the stdx fault error type. It also provides a
//              performance timer that measures an operation and logs its
//              duration when stopped.
//
// Usage:
//
//	import "github.com/stdx-go/stdx/core/log"
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormatter(log.NewTextFormatter()).
//		WithField("component", "hexdump")
//
//	logger.Info("dump complete", log.Fields{"bytes": 512})
//	logger.ErrorErr("dump failed", err, nil)
//
//	timer := logger.StartTimer("parse_input")
//	// ... perform the operation
//	timer.Stop()
package log
