// Package bits provides low-level bit and byte manipulation helpers.
//
// Package: bits
// Title: stdx Bit Manipulation Utilities
// Description: This package collects small, allocation-free helpers for
//              working with flag sets, byte order, and raw byte buffers:
//              generic bitmask operations over unsigned flag types, byte
//              swapping for endianness conversion, and bytewise xor and
//              zeroing of buffers.
//
// Usage:
//
//	import "github.com/stdx-go/stdx/core/bits"
//
//	type Perm uint8
//	const (
//		Read Perm = 1 << iota
//		Write
//		Exec
//	)
//
//	p := bits.Set(Read, Write)
//	if bits.Has(p, Write) {
//		p = bits.Clear(p, Write)
//	}
//
//	be := bits.Swap32(0x01020304) // 0x04030201
//
//	bits.Memxor(ciphertext, keystream)
//	bits.Zero(keystream)
package bits
