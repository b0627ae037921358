// File: memxor.go
// Title: Bytewise Buffer Operations
// Description: Bytewise xor-assignment and zeroing over byte slices.

package bits

// Memxor xor-assigns dst with src bytewise and returns the number of bytes
// processed, which is the length of the shorter slice
func Memxor(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
	return n
}

// Zero overwrites every byte of b with zero
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
