// File: traits.go
// Title: Character Traits Policies
// Description: Defines the Char constraint, the Traits policy interface and
//              the stateless policy implementations for the three supported
//              code unit widths. Views delegate all length, comparison and
//              equality work to their traits policy.

package strview

import (
	"unsafe"
)

// Char is the set of supported code unit types: narrow 8-bit units plus the
// two fixed-width Unicode code unit widths (UTF-16 units and code points).
type Char interface {
	~byte | ~uint16 | ~int32
}

// Traits supplies the primitive operations a view needs for one code unit
// width. Implementations must be stateless; a view instantiates its policy
// as a zero value whenever it needs one.
type Traits[C Char] interface {
	// Length returns the number of units before the terminator.
	// p must be non-nil and null-terminated.
	Length(p *C) int

	// Compare lexicographically compares the first n units at a and b and
	// returns a negative, zero or positive result
	Compare(a, b *C, n int) int

	// Eq reports whether two units are equal
	Eq(x, y C) bool
}

// ptrAdd returns the pointer i units past p
func ptrAdd[C Char](p *C, i int) *C {
	return (*C)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(*p)))
}

// deref reads the unit i positions past p
func deref[C Char](p *C, i int) C {
	return *ptrAdd(p, i)
}

// scanLength walks forward from p until the terminator
func scanLength[C Char](p *C) int {
	n := 0
	for deref(p, n) != 0 {
		n++
	}
	return n
}

// compareUnits compares n units at a and b
func compareUnits[C Char](a, b *C, n int) int {
	for i := 0; i < n; i++ {
		x, y := deref(a, i), deref(b, i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Chars8 is the traits policy for 8-bit code units
type Chars8 struct{}

// Length implements Traits
func (Chars8) Length(p *byte) int { return scanLength(p) }

// Compare implements Traits
func (Chars8) Compare(a, b *byte, n int) int { return compareUnits(a, b, n) }

// Eq implements Traits
func (Chars8) Eq(x, y byte) bool { return x == y }

// Chars16 is the traits policy for UTF-16 code units
type Chars16 struct{}

// Length implements Traits
func (Chars16) Length(p *uint16) int { return scanLength(p) }

// Compare implements Traits
func (Chars16) Compare(a, b *uint16, n int) int { return compareUnits(a, b, n) }

// Eq implements Traits
func (Chars16) Eq(x, y uint16) bool { return x == y }

// Chars32 is the traits policy for 32-bit code points
type Chars32 struct{}

// Length implements Traits
func (Chars32) Length(p *rune) int { return scanLength(p) }

// Compare implements Traits
func (Chars32) Compare(a, b *rune, n int) int { return compareUnits(a, b, n) }

// Eq implements Traits
func (Chars32) Eq(x, y rune) bool { return x == y }
