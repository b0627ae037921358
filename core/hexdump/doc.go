// Package hexdump formats raw bytes as uppercase hexadecimal text.
//
// Package: hexdump
// Title: stdx Hexadecimal Byte Formatting
// Description: This package implements Dump, a value that renders a borrowed
//              byte region as uppercase two-digit hexadecimal pairs separated
//              by a configurable delimiter. A Dump borrows its data; the
//              caller keeps the bytes alive and unmutated while the dump is
//              in use. Lines produces a classic offset-prefixed multi-line
//              rendering for larger regions.
//
// Usage:
//
//	import "github.com/stdx-go/stdx/core/hexdump"
//
//	d, err := hexdump.New([]byte{0xDE, 0xAD, 0xBE, 0xEF}, " ")
//	if err != nil {
//		return err
//	}
//	fmt.Println(d) // DE AD BE EF
//
//	// Convenience with the default delimiter
//	s, _ := hexdump.Bytes(data)
//
//	// Multi-line with offsets, 16 bytes per line
//	lines, _ := hexdump.Lines(data, 0)
package hexdump
