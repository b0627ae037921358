// File: view.go
// Title: String View Implementation
// Description: Implements the View value type: construction from the
//              supported borrowing sources, element access, prefix removal,
//              three-way comparison, prefix/suffix tests, iteration and
//              materialization into owning Go values.

package strview

import (
	"io"
	"iter"
	"unsafe"

	"github.com/stdx-go/stdx/core/fault"
)

// zeroBlock backs every empty view. It is wide and aligned enough to be read
// as a single terminator of any supported unit width, and it lives for the
// whole process, so an empty view's data pointer is never nil and never
// dangles.
var zeroBlock uint64

func emptyData[C Char]() *C {
	return (*C)(unsafe.Pointer(&zeroBlock))
}

// View refers to a constant contiguous sequence of code units with the first
// unit at position zero. The viewed sequence must be null-terminated and must
// not contain an embedded terminator before position Len().
//
// A View is two words and has value semantics: copying a view copies the
// pointer and length, never the underlying data. The zero value is a valid
// empty view.
type View[C Char, T Traits[C]] struct {
	data *C
	size int
}

// Common instantiations.
type (
	// StringView views 8-bit character data
	StringView = View[byte, Chars8]

	// U16StringView views UTF-16 code unit data
	U16StringView = View[uint16, Chars16]

	// U32StringView views 32-bit code point data
	U32StringView = View[rune, Chars32]
)

// Owner is an owning string object a view can borrow from. Data must return
// a pointer to the first unit of a null-terminated buffer and Len the unit
// count before the terminator.
//
// The borrow contract applies: the owner must outlive every borrowed view
// and must not be mutated while one exists, since growth may reallocate the
// buffer out from under the view.
type Owner[C Char] interface {
	Data() *C
	Len() int
}

// Empty returns a view of size 0 over a static terminator
func Empty[C Char, T Traits[C]]() View[C, T] {
	return View[C, T]{}
}

// FromPtr constructs a view of the null-terminated sequence at p, computing
// the length by scanning for the terminator via the traits policy.
//
// p must be non-nil and the range up to the terminator must be valid memory;
// the behavior is undefined otherwise. Linear in the sequence length.
func FromPtr[C Char, T Traits[C]](p *C) View[C, T] {
	var t T
	return View[C, T]{data: p, size: t.Length(p)}
}

// FromPtrLen constructs a view from a pointer and a known length, avoiding
// the terminator scan. size must equal the true distance from p to the
// terminator and the range must be valid memory; the behavior is undefined
// otherwise. Constant time.
func FromPtrLen[C Char, T Traits[C]](p *C, size int) View[C, T] {
	return View[C, T]{data: p, size: size}
}

// FromSlice constructs a view borrowing a slice that carries its own
// terminator as the final element, the fixed-size-array source: the view's
// length is len(s)-1 and no scan is performed. s must not contain an
// embedded terminator before its final element. An empty slice yields an
// empty view. Constant time.
func FromSlice[C Char, T Traits[C]](s []C) View[C, T] {
	if len(s) == 0 {
		return View[C, T]{}
	}
	return View[C, T]{data: &s[0], size: len(s) - 1}
}

// Borrow constructs a view of the buffer owned by o. The view's length is
// the owner's length at the time of the call; mutating the owner afterwards
// invalidates the view. See the Owner borrow contract.
func Borrow[C Char, T Traits[C]](o Owner[C]) View[C, T] {
	return View[C, T]{data: o.Data(), size: o.Len()}
}

// Data returns a pointer to the first unit of the viewed sequence. The range
// [Data, Data+Len] is valid and ends in a terminator. Never nil, even for
// the zero-value view.
func (v View[C, T]) Data() *C {
	if v.data == nil {
		return emptyData[C]()
	}
	return v.data
}

// Len returns the number of units in the view, not counting the terminator
func (v View[C, T]) Len() int {
	return v.size
}

// IsEmpty reports whether the view has no units
func (v View[C, T]) IsEmpty() bool {
	return v.size == 0
}

// Index returns the unit at the given position without bounds checking.
// Index(Len()) returns the zero unit, as every viewed sequence is
// null-terminated. The behavior is undefined for positions outside
// [0, Len()].
func (v View[C, T]) Index(position int) C {
	return deref(v.Data(), position)
}

// At returns the unit at the given position with bounds checking. Like
// Index, position == Len() is valid and yields the terminator; only
// positions outside [0, Len()] produce an out-of-range fault.
func (v View[C, T]) At(position int) (C, error) {
	if position < 0 || position > v.size {
		var zero C
		return zero, fault.Errorf("position %d out of bounds for view of length %d", position, v.size).
			WithCode(fault.CodeOutOfRange).
			WithDetail("position", position).
			WithDetail("length", v.size)
	}
	return v.Index(position), nil
}

// Front returns the first unit, equivalent to Index(0). On an empty view it
// returns the zero unit, as the viewed sequence is null-terminated.
func (v View[C, T]) Front() C {
	return v.Index(0)
}

// Back returns the last unit, equivalent to Index(Len()-1). The behavior is
// undefined on an empty view.
func (v View[C, T]) Back() C {
	return v.Index(v.size - 1)
}

// RemovePrefix moves the start of the view forward by n units, shrinking it
// by the same amount. An n greater than Len() removes everything, leaving an
// empty view just past the originally viewed content; the underlying data is
// untouched either way.
func (v *View[C, T]) RemovePrefix(n int) {
	if n <= 0 {
		return
	}
	if n > v.size {
		n = v.size
	}
	if v.data != nil {
		v.data = ptrAdd(v.data, n)
	}
	v.size -= n
}

// Swap exchanges the view with other. Neither referenced sequence is
// affected.
func (v *View[C, T]) Swap(other *View[C, T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// Compare three-way compares the view with other: the common prefix is
// compared unit by unit via the traits policy, with the lengths as the
// tiebreaker. Returns a negative, zero or positive result. This is the
// single primitive all equality and ordering checks derive from.
func (v View[C, T]) Compare(other View[C, T]) int {
	var t T
	result := t.Compare(v.Data(), other.Data(), min(v.size, other.size))
	if result == 0 {
		switch {
		case v.size < other.size:
			result = -1
		case v.size > other.size:
			result = 1
		}
	}
	return result
}

// ComparePtr three-way compares the view with the null-terminated sequence
// at p. Same preconditions as FromPtr.
func (v View[C, T]) ComparePtr(p *C) int {
	return v.Compare(FromPtr[C, T](p))
}

// Equal reports whether the view and other have equal content
func (v View[C, T]) Equal(other View[C, T]) bool {
	return v.Compare(other) == 0
}

// Less reports whether the view orders lexicographically before other
func (v View[C, T]) Less(other View[C, T]) bool {
	return v.Compare(other) < 0
}

// StartsWithChar reports whether the view begins with the given unit.
// An empty view starts with nothing.
func (v View[C, T]) StartsWithChar(c C) bool {
	var t T
	return !v.IsEmpty() && t.Eq(c, v.Front())
}

// StartsWith reports whether the view begins with the given prefix
func (v View[C, T]) StartsWith(prefix View[C, T]) bool {
	var t T
	return v.size >= prefix.size &&
		t.Compare(v.Data(), prefix.Data(), prefix.size) == 0
}

// EndsWithChar reports whether the view ends with the given unit.
// An empty view ends with nothing.
func (v View[C, T]) EndsWithChar(c C) bool {
	var t T
	return !v.IsEmpty() && t.Eq(c, v.Back())
}

// EndsWith reports whether the view ends with the given suffix
func (v View[C, T]) EndsWith(suffix View[C, T]) bool {
	var t T
	return v.size >= suffix.size &&
		t.Compare(ptrAdd(v.Data(), v.size-suffix.size), suffix.Data(), suffix.size) == 0
}

// Slice returns a freshly allocated copy of the viewed units, without the
// terminator
func (v View[C, T]) Slice() []C {
	out := make([]C, v.size)
	copy(out, unsafe.Slice(v.Data(), v.size))
	return out
}

// String materializes the view's content as an owning Go string, decoding
// the units according to their width. This is a convenience conversion and
// allocates; it is not part of the borrowing contract.
func (v View[C, T]) String() string {
	return Decode(unsafe.Slice(v.Data(), v.size))
}

// WriteTo writes exactly the viewed content to w, encoded as by String.
// Implements io.WriterTo.
func (v View[C, T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	if err != nil {
		return int64(n), fault.Wrap(err, "writing view content").WithCode(fault.CodeIO)
	}
	return int64(n), nil
}

// All returns a forward iterator over (position, unit) pairs of the view
func (v View[C, T]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.Index(i)) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over (position, unit) pairs of the
// view, from the last unit down to the first
func (v View[C, T]) Backward() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.Index(i)) {
				return
			}
		}
	}
}
