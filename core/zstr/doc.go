// Package zstr provides an owning, growable, always null-terminated string
// buffer.
//
// Package: zstr
// Title: stdx Null-Terminated String Buffers
// Description: This package implements Buffer, the owning counterpart to the
//              strview package's non-owning views. A Buffer's backing storage
//              ends in exactly one terminator at all times, which makes every
//              buffer a valid borrowing source for a view. Buffers are
//              generic over the same code unit widths as views; String is the
//              common 8-bit instantiation.
//
// Usage:
//
//	import (
//		"github.com/stdx-go/stdx/core/strview"
//		"github.com/stdx-go/stdx/core/zstr"
//	)
//
//	s := zstr.From("hello").AppendGoString(", world")
//	v := strview.Of(s)   // borrow; keep s alive and unmutated while v is used
//
//	formatted := zstr.Sprintf("%d items", 42)
//
//	// Materialize a view back into an owning buffer
//	owned := zstr.FromView(v)
package zstr
