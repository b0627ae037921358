// Package fault provides structured errors for the stdx library.
//
// Package: fault
// Title: stdx Error Handling
// Description: This package implements the error type used throughout stdx.
//              Every error carries a classification code, a severity, the
//              source location it was raised at, and optional key-value
//              details. Errors remain fully compatible with the standard
//              library errors package (Is, As, Unwrap).
//
// Usage:
//
//	import "github.com/stdx-go/stdx/core/fault"
//
//	// Create a new error with a code
//	err := fault.New("position was out of bounds").
//		WithCode(fault.CodeOutOfRange).
//		WithDetail("position", 12)
//
//	// Wrap an underlying error
//	err = fault.Wrap(ioErr, "reading input file").WithCode(fault.CodeIO)
//
//	// Inspect errors anywhere in the chain
//	if fault.HasCode(err, fault.CodeOutOfRange) {
//		// handle the recoverable bounds failure
//	}
package fault
