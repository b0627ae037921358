// File: bswap.go
// Title: Byte Order Reversal
// Description: Byte-swapping helpers for converting integer values between
//              little and big endian representation.

package bits

import (
	"math/bits"
	"unsafe"
)

// Swap16 returns v with its two bytes reversed
func Swap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// Swap32 returns v with its four bytes reversed
func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// Swap64 returns v with its eight bytes reversed
func Swap64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// SwapBytes returns v with its bytes reversed, dispatching on the width of
// the integer type. Converts between little and big endian representations.
func SwapBytes[T ~uint16 | ~uint32 | ~uint64](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	default:
		return T(bits.ReverseBytes64(uint64(v)))
	}
}
