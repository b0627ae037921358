// Package strview provides a non-owning, read-only view over contiguous,
// null-terminated character data.
//
// Package: strview
// Title: stdx String Views
// Description: This package implements View, a cheap value type that refers
//              to a constant sequence of fixed-width code units without
//              copying or owning them. A view is two words (pointer and
//              length) and is meant to be passed by value, above all as a
//              function parameter type that accepts borrowed text from any
//              null-terminated source without forcing the caller to
//              materialize an owning string.
//
//              Views are generic over the code unit width (byte, uint16 and
//              rune) and over a Traits policy supplying length, comparison
//              and equality operations for that width. The policy is a type
//              parameter, so every instantiation is resolved at compile time.
//
// Lifetime contract:
//
// A view never allocates, copies or frees the storage it refers to. The
// viewed range must stay valid, unmodified and null-terminated for the whole
// lifetime of the view; the package performs no liveness tracking. In
// particular, when borrowing from an owning buffer (Borrow, Of), the owner
// must be kept alive and unmutated while the view is in use. Never borrow
// from an owner you are about to discard; the resulting view dangles the
// moment the owner's buffer is collected or grown.
//
// Usage:
//
//	import "github.com/stdx-go/stdx/core/strview"
//
//	greeting := strview.Lit("hello")
//	greeting.Len()                        // 5
//	greeting.Front()                      // 'h'
//	greeting.StartsWith(strview.Lit("he")) // true
//
//	owner := zstr.From("hello world")
//	v := strview.Of(owner)
//	v.RemovePrefix(6)
//	v.String()                            // "world"
package strview
