// File: buffer.go
// Title: Null-Terminated Buffer Implementation
// Description: Implements the growable Buffer type. The invariant maintained
//              by every operation is that the backing slice holds the content
//              units followed by exactly one terminator, so Data always
//              returns a pointer to a null-terminated sequence.

package zstr

import (
	"fmt"

	"github.com/stdx-go/stdx/core/strview"
)

// Buffer is an owning, growable sequence of code units whose backing storage
// always ends in a terminator. The zero value is an empty buffer ready for
// use.
//
// Buffers are not safe for concurrent mutation. Growing a buffer may move
// its backing storage; any view borrowed before the growth dangles
// afterwards.
type Buffer[C strview.Char] struct {
	buf []C // invariant once initialized: len(buf) >= 1, buf[len(buf)-1] == 0
}

// String is the 8-bit Buffer instantiation
type String = Buffer[byte]

// New creates an empty buffer
func New[C strview.Char]() *Buffer[C] {
	return &Buffer[C]{buf: make([]C, 1)}
}

// NewCap creates an empty buffer with room for capacity units before the
// next reallocation
func NewCap[C strview.Char](capacity int) *Buffer[C] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[C]{buf: make([]C, 1, capacity+1)}
}

// From creates an 8-bit buffer holding a copy of the Go string's bytes
func From(s string) *String {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &String{buf: b}
}

// Sprintf creates an 8-bit buffer holding the formatted result, the
// string-allocating printf
func Sprintf(format string, args ...any) *String {
	return From(fmt.Sprintf(format, args...))
}

// FromView materializes a view's content into a new owning buffer of the
// same unit width. The view's to-string conversion target.
func FromView[C strview.Char, T strview.Traits[C]](v strview.View[C, T]) *Buffer[C] {
	units := v.Slice()
	buf := make([]C, len(units)+1)
	copy(buf, units)
	return &Buffer[C]{buf: buf}
}

// init establishes the terminator invariant on a zero-value buffer
func (b *Buffer[C]) init() {
	if b.buf == nil {
		b.buf = make([]C, 1)
	}
}

// Len returns the number of content units, not counting the terminator
func (b *Buffer[C]) Len() int {
	if len(b.buf) == 0 {
		return 0
	}
	return len(b.buf) - 1
}

// Cap returns the number of content units the buffer can hold before
// reallocating
func (b *Buffer[C]) Cap() int {
	if cap(b.buf) == 0 {
		return 0
	}
	return cap(b.buf) - 1
}

// IsEmpty reports whether the buffer holds no content units
func (b *Buffer[C]) IsEmpty() bool {
	return b.Len() == 0
}

// Data returns a pointer to the first unit of the null-terminated backing.
// Valid until the next mutation. Implements the strview Owner contract
// together with Len.
func (b *Buffer[C]) Data() *C {
	b.init()
	return &b.buf[0]
}

// Unit returns the content unit at the given position; the bounds are the
// caller's responsibility
func (b *Buffer[C]) Unit(position int) C {
	return b.buf[position]
}

// Append appends a single unit and returns the buffer
func (b *Buffer[C]) Append(c C) *Buffer[C] {
	b.init()
	b.buf[len(b.buf)-1] = c
	b.buf = append(b.buf, 0)
	return b
}

// AppendSlice appends a slice of units and returns the buffer
func (b *Buffer[C]) AppendSlice(units []C) *Buffer[C] {
	b.init()
	b.buf = b.buf[:len(b.buf)-1]
	b.buf = append(b.buf, units...)
	b.buf = append(b.buf, 0)
	return b
}

// AppendGoString encodes a Go string at the buffer's unit width and appends
// it, returning the buffer
func (b *Buffer[C]) AppendGoString(s string) *Buffer[C] {
	return b.AppendSlice(strview.Encode[C](s))
}

// Truncate keeps the first n content units and drops the rest. A negative n
// clears the buffer; an n beyond Len is a no-op.
func (b *Buffer[C]) Truncate(n int) *Buffer[C] {
	b.init()
	if n < 0 {
		n = 0
	}
	if n >= b.Len() {
		return b
	}
	b.buf = b.buf[:n+1]
	b.buf[n] = 0
	return b
}

// Reset drops all content units, keeping the allocated storage
func (b *Buffer[C]) Reset() *Buffer[C] {
	b.init()
	b.buf = b.buf[:1]
	b.buf[0] = 0
	return b
}

// Grow ensures room for n more content units without reallocation
func (b *Buffer[C]) Grow(n int) *Buffer[C] {
	b.init()
	if n <= 0 {
		return b
	}
	if free := cap(b.buf) - len(b.buf); free < n {
		grown := make([]C, len(b.buf), len(b.buf)+n)
		copy(grown, b.buf)
		b.buf = grown
	}
	return b
}

// Units returns a copy of the content units, without the terminator
func (b *Buffer[C]) Units() []C {
	out := make([]C, b.Len())
	copy(out, b.buf)
	return out
}

// Clone returns an independent copy of the buffer, the duplicate-string
// operation
func (b *Buffer[C]) Clone() *Buffer[C] {
	b.init()
	buf := make([]C, len(b.buf))
	copy(buf, b.buf)
	return &Buffer[C]{buf: buf}
}

// String decodes the content units into a Go string. Implements
// fmt.Stringer.
func (b *Buffer[C]) String() string {
	if b.Len() == 0 {
		return ""
	}
	return strview.Decode(b.buf[:len(b.buf)-1])
}
