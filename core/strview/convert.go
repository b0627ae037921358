// File: convert.go
// Title: Width Conversions and Convenience Constructors
// Description: Conversion between Go strings and code unit slices for the
//              supported widths, plus the short-named constructors for the
//              common view instantiations.

package strview

import (
	"unicode/utf16"
	"unsafe"
)

// Decode converts a slice of code units into a Go string. 8-bit units are
// taken verbatim, 16-bit units are decoded as UTF-16 and 32-bit units as
// code points.
func Decode[C Char](units []C) string {
	if len(units) == 0 {
		return ""
	}
	switch unsafe.Sizeof(units[0]) {
	case 2:
		u := make([]uint16, len(units))
		for i, c := range units {
			u[i] = uint16(c)
		}
		return string(utf16.Decode(u))
	case 4:
		r := make([]rune, len(units))
		for i, c := range units {
			r[i] = rune(c)
		}
		return string(r)
	default:
		b := make([]byte, len(units))
		for i, c := range units {
			b[i] = byte(c)
		}
		return string(b)
	}
}

// Encode converts a Go string into a slice of code units of the requested
// width, without a trailing terminator. The inverse of Decode.
func Encode[C Char](s string) []C {
	var probe C
	switch unsafe.Sizeof(probe) {
	case 2:
		u := utf16.Encode([]rune(s))
		out := make([]C, len(u))
		for i, c := range u {
			out[i] = C(c)
		}
		return out
	case 4:
		r := []rune(s)
		out := make([]C, len(r))
		for i, c := range r {
			out[i] = C(c)
		}
		return out
	default:
		out := make([]C, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = C(s[i])
		}
		return out
	}
}

// Z constructs a StringView of the null-terminated byte sequence at p,
// scanning for the terminator. See FromPtr for the preconditions.
func Z(p *byte) StringView {
	return FromPtr[byte, Chars8](p)
}

// ZLen constructs a StringView from a pointer and a known length.
// See FromPtrLen for the preconditions.
func ZLen(p *byte, size int) StringView {
	return FromPtrLen[byte, Chars8](p, size)
}

// Bytes constructs a StringView of a byte slice that carries its own
// terminator as the final element. See FromSlice.
func Bytes(b []byte) StringView {
	return FromSlice[byte, Chars8](b)
}

// U16 constructs a U16StringView of a terminator-carrying uint16 slice.
// See FromSlice.
func U16(s []uint16) U16StringView {
	return FromSlice[uint16, Chars16](s)
}

// U32 constructs a U32StringView of a terminator-carrying rune slice.
// See FromSlice.
func U32(s []rune) U32StringView {
	return FromSlice[rune, Chars32](s)
}

// Of constructs a StringView borrowing from an owning byte buffer.
// The Owner borrow contract applies.
func Of(o Owner[byte]) StringView {
	return Borrow[byte, Chars8](o)
}

// OfU16 constructs a U16StringView borrowing from an owning uint16 buffer.
// The Owner borrow contract applies.
func OfU16(o Owner[uint16]) U16StringView {
	return Borrow[uint16, Chars16](o)
}

// OfU32 constructs a U32StringView borrowing from an owning rune buffer.
// The Owner borrow contract applies.
func OfU32(o Owner[rune]) U32StringView {
	return Borrow[rune, Chars32](o)
}

// Lit constructs a StringView from a Go string literal. Go strings carry no
// terminator guarantee, so the content is copied once into a fresh
// null-terminated backing array owned by the returned view's backing; unlike
// the other constructors this allocates. Intended for literals and test
// fixtures, not hot paths.
func Lit(s string) StringView {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return StringView{data: &b[0], size: len(s)}
}

// Lit16 is Lit for UTF-16 views
func Lit16(s string) U16StringView {
	units := append(Encode[uint16](s), 0)
	return U16StringView{data: &units[0], size: len(units) - 1}
}

// Lit32 is Lit for code point views
func Lit32(s string) U32StringView {
	units := append(Encode[rune](s), 0)
	return U32StringView{data: &units[0], size: len(units) - 1}
}
