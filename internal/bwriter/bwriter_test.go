package bwriter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutUintLE(t *testing.T) {
	buf := make([]byte, 16)
	PutUint16LE(buf, 0, 0xABCD)
	require.Equal(t, []byte{0xCD, 0xAB}, buf[0:2])

	PutUint32LE(buf, 2, 0xDEADBEEF)
	require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, buf[2:6])

	PutUint64LE(buf, 6, 0x0102030405060708)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf[6:14])
}

func TestPutFloat64LE(t *testing.T) {
	buf := make([]byte, 8)
	PutFloat64LE(buf, 0, 3.5)
	require.Equal(t, math.Float64bits(3.5), uint64(0)|
		uint64(buf[0])|uint64(buf[1])<<8|uint64(buf[2])<<16|uint64(buf[3])<<24|
		uint64(buf[4])<<32|uint64(buf[5])<<40|uint64(buf[6])<<48|uint64(buf[7])<<56)
}

func TestWriteUTF8Pads(t *testing.T) {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xFF
	}
	WriteUTF8(buf, 0, "hi", 4, 0x20)
	require.Equal(t, []byte{'h', 'i', 0x20, 0x20}, buf[0:4])
}

func TestWriteASCIIPanicsOnNonASCII(t *testing.T) {
	buf := make([]byte, 8)
	require.Panics(t, func() {
		WriteASCII(buf, 0, "café", 8)
	})
}

func TestAlign(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{3, 4, 4},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Align(c.n, c.k))
	}
}
