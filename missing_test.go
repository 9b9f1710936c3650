package sas7bdat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardMissingBitsMatchSpecExample(t *testing.T) {
	// spec.md scenario 2: Standard missing bits 0xFFFFFE0000000000, whose
	// little-endian byte encoding is 00 00 00 00 00 FE FF FF.
	require.Equal(t, uint64(0xFFFFFE0000000000), MissingStandard.Bits())

	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(MissingStandard.Bits() >> (8 * i))
	}
	require.Equal(t, [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0xFE, 0xFF, 0xFF}, buf)
}

func TestAll28SentinelsAreDistinct(t *testing.T) {
	seen := make(map[uint64]MissingValue)
	all := append([]MissingValue{MissingStandard, MissingUnderscore}, lettered()...)
	require.Len(t, all, 28)
	for _, m := range all {
		bits := m.Bits()
		if other, ok := seen[bits]; ok {
			t.Fatalf("sentinel %v and %v share bit pattern %#x", m, other, bits)
		}
		seen[bits] = m
	}
}

func TestIsMissingValueRoundTrips(t *testing.T) {
	for _, m := range append([]MissingValue{MissingStandard, MissingUnderscore}, lettered()...) {
		got, ok := IsMissingValue(m.Bits())
		require.True(t, ok)
		require.Equal(t, m, got)
	}
	_, ok := IsMissingValue(0x3FF0000000000000) // bits of 1.0, not a sentinel
	require.False(t, ok)
}

func lettered() []MissingValue {
	out := make([]MissingValue, 0, 26)
	for m := MissingA; m <= MissingZ; m++ {
		out = append(out, m)
	}
	return out
}
