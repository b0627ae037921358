// File: bitmask.go
// Title: Bitmask Flag Helpers
// Description: Generic set/clear/toggle/query operations for flag types
//              declared as unsigned integer enumerations.

package bits

// Flags is the constraint for bitmask-style flag types
type Flags interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Set returns v with the given mask bits set
func Set[F Flags](v, mask F) F {
	return v | mask
}

// Clear returns v with the given mask bits cleared
func Clear[F Flags](v, mask F) F {
	return v &^ mask
}

// Toggle returns v with the given mask bits inverted
func Toggle[F Flags](v, mask F) F {
	return v ^ mask
}

// Has reports whether all bits of mask are set in v
func Has[F Flags](v, mask F) bool {
	return v&mask == mask
}

// Any reports whether at least one bit of mask is set in v
func Any[F Flags](v, mask F) bool {
	return v&mask != 0
}

// None reports whether no bit of mask is set in v
func None[F Flags](v, mask F) bool {
	return v&mask == 0
}
