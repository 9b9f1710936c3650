// Package bwriter provides unchecked little-endian writes at a caller-supplied
// offset into a caller-owned buffer, plus the small set of padding/alignment
// helpers the sas7bdat encoders share.
package bwriter

import (
	"encoding/binary"
	"math"
)

// PutUint16LE writes v at buf[off:off+2].
func PutUint16LE(buf []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(buf[off:off+2], v)
}

// PutUint32LE writes v at buf[off:off+4].
func PutUint32LE(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], v)
}

// PutUint64LE writes v at buf[off:off+8].
func PutUint64LE(buf []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:off+8], v)
}

// PutFloat64LE writes the IEEE-754 bit pattern of v at buf[off:off+8].
func PutFloat64LE(buf []byte, off int, v float64) {
	PutUint64LE(buf, off, math.Float64bits(v))
}

// WriteUTF8 copies the UTF-8 bytes of s into buf starting at off, then pads
// the remainder up to length with pad. The caller must have already checked
// that len(s) <= length.
func WriteUTF8(buf []byte, off int, s string, length int, pad byte) {
	n := copy(buf[off:off+length], s)
	for i := n; i < length; i++ {
		buf[off+i] = pad
	}
}

// WriteASCII is WriteUTF8 with a space pad byte. It panics if s is not
// 7-bit ASCII: that indicates a defect in a caller that should have
// validated strict-ASCII fields at construction time, not a user error.
func WriteASCII(buf []byte, off int, s string, length int) {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			panic("bwriter: WriteASCII given non-ASCII string")
		}
	}
	WriteUTF8(buf, off, s, length, ' ')
}

// Align returns the smallest multiple of k that is >= n.
func Align(n, k int) int {
	if k <= 0 {
		return n
	}
	return ((n + k - 1) / k) * k
}
